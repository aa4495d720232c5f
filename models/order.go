package models

import "time"

// Order status values. UNPAID is the only start state; PAID and REJECTED
// are terminal.
const (
	OrderStatusUnpaid   = "UNPAID"
	OrderStatusPaid     = "PAID"
	OrderStatusRejected = "REJECTED"
)

const (
	PaymentMethodCash  = "CASH"
	PaymentMethodDebit = "DEBIT"
	PaymentMethodQris  = "QRIS"
)

type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Code            string        `gorm:"type:varchar(16);uniqueIndex;not null" json:"code"`
	Status          string        `gorm:"type:varchar(10);not null;default:'UNPAID'" json:"status"`
	TotalItems      int           `gorm:"not null;default:0" json:"totalItems"`
	TotalPrice      float64       `gorm:"not null;default:0" json:"totalPrice"`
	TaxPercent      float64       `gorm:"not null;default:0" json:"taxPercent"`
	TotalFinalPrice float64       `gorm:"not null;default:0" json:"totalFinalPrice"`
	PaymentMethod   *string       `gorm:"type:varchar(10)" json:"paymentMethod"`
	CashInChange    *float64      `json:"cashInChange"`
	DebitProvider   *string       `gorm:"type:varchar(100)" json:"debitProvider"`
	DebitCardNumber *string       `gorm:"type:varchar(32)" json:"debitCardNumber"`
	CreatedAt       time.Time     `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"not null" json:"updatedAt"`
	Transactions    []Transaction `gorm:"foreignKey:OrderID" json:"-"`
}
