package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/resto-admin/models"
	"github.com/yeremiapane/resto-admin/services"
	"github.com/yeremiapane/resto-admin/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Menu{}, &models.Order{}, &models.Transaction{}))
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	orderService := services.NewOrderService(db, services.NewPricingEngine(0.1))

	menuCtrl := NewMenuController(db)
	orderCtrl := NewOrderController(db, orderService)
	transactionCtrl := NewTransactionController(db)
	statisticCtrl := NewStatisticController(db)

	r.GET("/menus", menuCtrl.GetAllMenus)
	r.POST("/menus", menuCtrl.CreateMenu)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
	r.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

	r.GET("/orders", orderCtrl.GetAllOrders)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.PUT("/orders/:order_id", orderCtrl.UpdateOrder)

	r.GET("/transactions", transactionCtrl.GetAllTransactions)
	r.GET("/statistic", statisticCtrl.GetStatistic)

	return r
}

func performJSON(t *testing.T, r http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func performForm(t *testing.T, r http.Handler, method, path string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func responseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	resp := decodeResponse(t, w)
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}

func seedTestMenus(t *testing.T, db *gorm.DB) []models.Menu {
	t.Helper()
	menus := []models.Menu{
		{Name: "Nasi Goreng", Category: "Food", Price: 10000, Stock: 50, Description: "fried rice"},
		{Name: "Es Teh", Category: "Drink", Price: 5000, Stock: 100, Description: "iced tea"},
		{Name: "Sate Ayam", Category: "Food", Price: 25000, Stock: 0, Description: "chicken satay"},
	}
	require.NoError(t, db.Create(&menus).Error)
	return menus
}

func seedTestOrder(t *testing.T, db *gorm.DB, code, status string) models.Order {
	t.Helper()
	now := time.Now()
	order := models.Order{
		Code:            code,
		Status:          status,
		TotalItems:      5,
		TotalPrice:      35000,
		TaxPercent:      0.1,
		TotalFinalPrice: 38500,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, db.Create(&order).Error)

	lines := []models.Transaction{
		{OrderID: order.ID, MenuID: 1, TotalItem: 2, TotalPrice: 20000, CreatedAt: now, UpdatedAt: now},
		{OrderID: order.ID, MenuID: 2, TotalItem: 3, TotalPrice: 15000, CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, db.Create(&lines).Error)
	return order
}
