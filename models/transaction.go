package models

import "time"

// Transaction is one menu line inside an order. Lines are owned by their
// order and only ever replaced through order confirmation, never mutated
// on their own. The RESTRICT constraint on MenuID keeps historical lines
// accurate: a menu referenced by any line cannot be deleted.
type Transaction struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"orderId"`
	Order      Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	MenuID     uint      `gorm:"not null;index" json:"menuId"`
	Menu       Menu      `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TotalItem  int       `gorm:"not null" json:"totalItem"`
	TotalPrice float64   `gorm:"not null" json:"totalPrice"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null" json:"updatedAt"`
}
