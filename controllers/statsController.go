package controllers

import (
	"net/http"

	"github.com/FloresaZogaj1/topbackend/initializers"
	"github.com/FloresaZogaj1/topbackend/models"
	"github.com/gin-gonic/gin"
)

// GetStats returns the admin dashboard counters: catalog/user/order totals,
// lifetime sales and today's activity. Rejected orders are excluded from
// today's sales.
func GetStats(ctx *gin.Context) {
	var totalProducts, totalUsers, totalOrders int64
	if err := initializers.DB.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		sendServerError(ctx, "Unable to fetch stats", err)
		return
	}
	if err := initializers.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		sendServerError(ctx, "Unable to fetch stats", err)
		return
	}
	if err := initializers.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		sendServerError(ctx, "Unable to fetch stats", err)
		return
	}

	var totalSales float64
	if err := initializers.DB.Model(&models.Order{}).
		Select("IFNULL(SUM(total), 0)").
		Scan(&totalSales).Error; err != nil {
		sendServerError(ctx, "Unable to fetch stats", err)
		return
	}

	var today struct {
		SalesToday  float64
		OrdersToday int64
	}
	if err := initializers.DB.Model(&models.Order{}).
		Select("IFNULL(SUM(total), 0) AS sales_today, COUNT(*) AS orders_today").
		Where("DATE(created_at) = CURDATE() AND (status IS NULL OR status <> ?)", "rejected").
		Scan(&today).Error; err != nil {
		sendServerError(ctx, "Unable to fetch stats", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"totalProducts": totalProducts,
		"totalUsers":    totalUsers,
		"totalOrders":   totalOrders,
		"totalSales":    totalSales,
		"salesToday":    today.SalesToday,
		"ordersToday":   today.OrdersToday,
	})
}
