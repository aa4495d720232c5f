package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/resto-admin/models"
	"github.com/yeremiapane/resto-admin/services"
	"github.com/yeremiapane/resto-admin/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB, service *services.OrderService) *OrderController {
	return &OrderController{DB: db, Service: service}
}

// GetAllOrders -> paginated order listing, newest first, with an
// optional code substring filter.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := parsePagination(c, 100)

	query := oc.DB.Model(&models.Order{})
	if code := c.Query("code"); code != "" {
		query = query.Where("code LIKE ?", "%"+code+"%")
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		respondInternalError(c, "failed get data orders", err)
		return
	}

	var orders []models.Order
	if err := query.Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error; err != nil {
		respondInternalError(c, "failed get data orders", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "success get data orders", gin.H{
		"pagination": paginate(totalRows, page, limit),
		"orders":     orders,
	})
}

// CreateOrder -> new UNPAID draft order from menu selections.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type reqBody struct {
		Menus []struct {
			ID  uint `json:"id" binding:"required"`
			Qty int  `json:"qty" binding:"required,gt=0"`
		} `json:"menus" binding:"required"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "failed add order", err.Error())
		return
	}

	input := services.CreateOrderInput{}
	for _, item := range body.Menus {
		input.Menus = append(input.Menus, services.Selection{MenuID: item.ID, Qty: item.Qty})
	}

	order, err := oc.Service.Create(input)
	if err != nil {
		respondServiceError(c, "failed add order", err)
		return
	}

	utils.InfoLogger.Printf("order %s created, total %s",
		order.Code, utils.FormatCurrencyIDR(order.TotalFinalPrice))
	utils.RespondJSON(c, http.StatusCreated, "success add order", gin.H{"code": order.Code})
}

type orderItemRow struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Qty        int     `json:"qty"`
	TotalPrice float64 `json:"totalPrice"`
}

type orderDetail struct {
	models.Order
	Items []orderItemRow `json:"items"`
}

// GetOrderByID -> order header plus its lines joined with menu names.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "failed get order detail", "id is required")
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "failed get order detail", "order not found")
		return
	}

	var items []orderItemRow
	if err := oc.DB.Table("transactions").
		Select("menus.id AS id, menus.name AS name, transactions.total_item AS qty, transactions.total_price AS total_price").
		Joins("LEFT JOIN menus ON menus.id = transactions.menu_id").
		Where("transactions.order_id = ?", order.ID).
		Scan(&items).Error; err != nil {
		respondInternalError(c, "failed get order detail", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "success get data orders", gin.H{
		"order": orderDetail{Order: order, Items: items},
	})
}

// UpdateOrder -> the confirmation endpoint: moves an order to PAID or
// REJECTED, with optional price-corrected menu lines and payment
// details. A REJECTED request ignores any menus/payment payload.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "failed update order", "id is required")
		return
	}

	type paymentReq struct {
		Method          string   `json:"method" binding:"required"`
		CashInChange    *float64 `json:"cashInChange"`
		DebitProvider   string   `json:"debitProvider"`
		DebitCardNumber string   `json:"debitCardNumber"`
	}
	type reqBody struct {
		Status string `json:"status" binding:"required"`
		Menus  []struct {
			ID  uint `json:"id" binding:"required"`
			Qty int  `json:"qty" binding:"required,gt=0"`
		} `json:"menus"`
		Payment *paymentReq `json:"payment"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "failed update order", err.Error())
		return
	}

	input := services.ConfirmOrderInput{Status: body.Status}
	for _, item := range body.Menus {
		input.Menus = append(input.Menus, services.Selection{MenuID: item.ID, Qty: item.Qty})
	}
	if body.Payment != nil {
		input.Payment = &services.PaymentInfo{
			Method:          body.Payment.Method,
			CashInChange:    body.Payment.CashInChange,
			DebitProvider:   body.Payment.DebitProvider,
			DebitCardNumber: body.Payment.DebitCardNumber,
		}
	}

	status, err := oc.Service.Confirm(uint(id), input)
	if err != nil {
		respondServiceError(c, "failed update order", err)
		return
	}

	utils.InfoLogger.Printf("order %d confirmed %s", id, status)
	utils.RespondJSON(c, http.StatusOK, "success update order", gin.H{"status": status})
}
