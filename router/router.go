package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/resto-admin/controllers"
	"github.com/yeremiapane/resto-admin/middlewares"
	"github.com/yeremiapane/resto-admin/services"
)

func SetupRouter(db *gorm.DB, pricing *services.PricingEngine) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	// Uploaded menu images.
	r.Static("/uploads", filepath.Join("public", "uploads"))

	orderService := services.NewOrderService(db, pricing)

	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db, orderService)
	transactionCtrl := controllers.NewTransactionController(db)
	statisticCtrl := controllers.NewStatisticController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

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
