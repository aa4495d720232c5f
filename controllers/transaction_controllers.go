package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/resto-admin/models"
	"github.com/yeremiapane/resto-admin/utils"
)

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

type transactionRow struct {
	ID        *uint    `json:"id"`
	OrderCode string   `json:"orderCode"`
	ItemName  *string  `json:"itemName"`
	ItemTotal *int     `json:"itemTotal"`
	ItemPrice *float64 `json:"itemPrice"`
}

// GetAllTransactions -> the sales history: lines of PAID orders joined
// with their order code and menu name, newest orders first. Pointer
// fields keep PAID orders without lines visible, as the left join does.
func (tc *TransactionController) GetAllTransactions(c *gin.Context) {
	page, limit := parsePagination(c, 10)

	baseQuery := func() *gorm.DB {
		q := tc.DB.Table("orders").
			Joins("LEFT JOIN transactions ON orders.id = transactions.order_id").
			Where("orders.status = ?", models.OrderStatusPaid)
		if code := c.Query("code"); code != "" {
			q = q.Where("orders.code LIKE ?", "%"+code+"%")
		}
		return q
	}

	var totalRows int64
	if err := baseQuery().Count(&totalRows).Error; err != nil {
		respondInternalError(c, "failed get data transactions", err)
		return
	}

	var rows []transactionRow
	if err := baseQuery().
		Select("transactions.id AS id, orders.code AS order_code, menus.name AS item_name, transactions.total_item AS item_total, transactions.total_price AS item_price").
		Joins("LEFT JOIN menus ON menus.id = transactions.menu_id").
		Order("orders.id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Scan(&rows).Error; err != nil {
		respondInternalError(c, "failed get data transactions", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "success get data transactions", gin.H{
		"pagination":   paginate(totalRows, page, limit),
		"transactions": rows,
	})
}
