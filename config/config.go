package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/yeremiapane/resto-admin/services"
)

type Config struct {
	Port       string
	TaxPercent float64
}

// Load reads settings from the environment. godotenv fills the
// environment from .env before this runs (see main).
func Load() Config {
	cfg := Config{
		Port:       envOr("PORT", "8080"),
		TaxPercent: services.DefaultTaxRate,
	}

	if raw := os.Getenv("TAX_PERCENT"); raw != "" {
		tax, err := strconv.ParseFloat(raw, 64)
		if err != nil || tax < 0 {
			return cfg
		}
		cfg.TaxPercent = tax
	}
	return cfg
}

// InitDB opens the MySQL connection from DB_* environment variables.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		envOr("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_HOST", "127.0.0.1"),
		envOr("DB_PORT", "3306"),
		envOr("DB_NAME", "resto_admin"),
	)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
