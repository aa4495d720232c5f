package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yeremiapane/resto-admin/config"
	"github.com/yeremiapane/resto-admin/models"
	"github.com/yeremiapane/resto-admin/router"
	"github.com/yeremiapane/resto-admin/services"
	"github.com/yeremiapane/resto-admin/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.Load()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	autoMigrate(db)

	pricing := services.NewPricingEngine(cfg.TaxPercent)

	r := router.SetupRouter(db, pricing)

	utils.InfoLogger.Printf("Listening on port %s (tax rate %.2f)", cfg.Port, pricing.TaxRate)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Menu{},
		&models.Order{},
		&models.Transaction{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
