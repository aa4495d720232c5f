package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/resto-admin/models"
	"github.com/yeremiapane/resto-admin/utils"
)

type StatisticController struct {
	DB *gorm.DB
}

func NewStatisticController(db *gorm.DB) *StatisticController {
	return &StatisticController{DB: db}
}

type latestOrderRow struct {
	ID              uint    `json:"id"`
	Code            string  `json:"code"`
	TotalItems      int     `json:"totalItems"`
	Status          string  `json:"status"`
	TotalFinalPrice float64 `json:"totalFinalPrice"`
}

type trendPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// GetStatistic -> dashboard read model: the four newest orders, total
// PAID and REJECTED revenue, and a zero-filled 7-day order trend.
func (sc *StatisticController) GetStatistic(c *gin.Context) {
	var latest []latestOrderRow
	if err := sc.DB.Model(&models.Order{}).
		Select("id, code, total_items, status, total_final_price").
		Order("id DESC").Limit(4).
		Scan(&latest).Error; err != nil {
		respondInternalError(c, "failed get data statistic", err)
		return
	}

	var analytics struct {
		TotalPaidOrders     float64
		TotalRejectedOrders float64
	}
	if err := sc.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(CASE WHEN status = 'PAID' THEN total_final_price ELSE 0 END), 0) AS total_paid_orders, " +
			"COALESCE(SUM(CASE WHEN status = 'REJECTED' THEN total_final_price ELSE 0 END), 0) AS total_rejected_orders").
		Scan(&analytics).Error; err != nil {
		respondInternalError(c, "failed get data statistic", err)
		return
	}

	paid, rejected, err := sc.orderTrends()
	if err != nil {
		respondInternalError(c, "failed get data statistic", err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "success get data statistic", gin.H{
		"latestOrder": latest,
		"orderAnalytics": gin.H{
			"totalPaidOrders":     analytics.TotalPaidOrders,
			"totalRejectedOrders": analytics.TotalRejectedOrders,
		},
		"orderTrends": gin.H{
			"paid":     paid,
			"rejected": rejected,
		},
	})
}

// orderTrends buckets the last 7 days of orders by day and status.
// Bucketing happens here instead of SQL so the query stays portable
// between MySQL and the sqlite test database.
func (sc *StatisticController) orderTrends() (paid, rejected []trendPoint, err error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -6)

	var rows []struct {
		CreatedAt time.Time
		Status    string
	}
	if err := sc.DB.Model(&models.Order{}).
		Select("created_at, status").
		Where("created_at >= ?", start).
		Scan(&rows).Error; err != nil {
		return nil, nil, err
	}

	paidByDay := make(map[string]int)
	rejectedByDay := make(map[string]int)
	for _, row := range rows {
		day := row.CreatedAt.Format("2006-01-02")
		switch row.Status {
		case models.OrderStatusPaid:
			paidByDay[day]++
		case models.OrderStatusRejected:
			rejectedByDay[day]++
		}
	}

	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		paid = append(paid, trendPoint{Date: day, Value: paidByDay[day]})
		rejected = append(rejected, trendPoint{Date: day, Value: rejectedByDay[day]})
	}
	return paid, rejected, nil
}
