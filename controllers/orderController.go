package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/FloresaZogaj1/topbackend/initializers"
	"github.com/FloresaZogaj1/topbackend/models"
	"github.com/FloresaZogaj1/topbackend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const maxOrderPageSize = 50

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// userIDFromContext returns the authenticated user's id, or nil for guests.
func userIDFromContext(ctx *gin.Context) *uint {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return nil
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return nil
	}
	uid := uint(id)
	return &uid
}

func isAdmin(ctx *gin.Context) bool {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}

// sendServerError logs full diagnostics server-side; raw error text reaches
// the client only outside production.
func sendServerError(ctx *gin.Context, message string, err error) {
	log.Println(message+":", err)
	payload := gin.H{"message": message}
	if err != nil && os.Getenv("APP_ENV") != "production" {
		payload["error"] = err.Error()
	}
	ctx.JSON(http.StatusInternalServerError, payload)
}

type orderItemResponse struct {
	ID        uint              `json:"id"`
	ProductID models.ProductRef `json:"productId"`
	Name      string            `json:"name"`
	Price     float64           `json:"price"`
	Qty       int               `json:"qty"`
}

type orderResponse struct {
	ID            uint                `json:"id"`
	UserID        *uint               `json:"userId"`
	CustomerName  string              `json:"customerName"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	Note          string              `json:"note"`
	Subtotal      float64             `json:"subtotal"`
	DeliveryFee   float64             `json:"deliveryFee"`
	Total         float64             `json:"total"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []orderItemResponse `json:"items"`
}

func buildOrderResponse(order models.Order) orderResponse {
	items := make([]orderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = orderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Qty:       item.Qty,
		}
	}
	return orderResponse{
		ID:            order.ID,
		UserID:        order.UserID,
		CustomerName:  order.CustomerName,
		Phone:         order.Phone,
		Address:       order.Address,
		City:          order.City,
		Note:          order.Note,
		Subtotal:      order.Subtotal,
		DeliveryFee:   order.DeliveryFee,
		Total:         order.Total,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt,
		Items:         items,
	}
}

func orderNotification(order models.Order, items []models.OrderItem) utils.OrderNotification {
	n := utils.OrderNotification{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Address:      order.Address,
		City:         order.City,
		Note:         order.Note,
		Subtotal:     order.Subtotal,
		DeliveryFee:  order.DeliveryFee,
		Total:        order.Total,
		Status:       order.Status,
	}
	for _, item := range items {
		n.Items = append(n.Items, utils.OrderNotificationItem{
			Name:  item.Name,
			Qty:   item.Qty,
			Price: item.Price,
		})
	}
	return n
}

// CreateOrder handles the public checkout: normalize, validate, recompute
// totals, persist header and lines in one transaction, then notify
// out-of-band.
func CreateOrder(ctx *gin.Context) {
	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	payload := normalizeOrderPayload(body)
	lines, err := validateOrderLines(payload)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	subtotal, total := orderTotals(lines, payload.DeliveryFee)

	order := models.Order{
		UserID:        userIDFromContext(ctx),
		CustomerName:  payload.CustomerName,
		Phone:         payload.Phone,
		Address:       payload.Address,
		City:          payload.City,
		Note:          payload.Note,
		Subtotal:      subtotal.InexactFloat64(),
		DeliveryFee:   payload.DeliveryFee.InexactFloat64(),
		Total:         total.InexactFloat64(),
		Status:        getEnvDefault("ORDER_STATUS_DEFAULT", "pending"),
		PaymentStatus: getEnvDefault("PAYMENT_STATUS_DEFAULT", "unpaid"),
	}
	items := toOrderItems(lines)

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		sendServerError(ctx, "Failed to create order", err)
		return
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := tx.Create(&items).Error; err != nil {
		tx.Rollback()
		sendServerError(ctx, "Failed to create order items", err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		sendServerError(ctx, "Failed to save order", err)
		return
	}

	// Fire-and-forget: the client never waits on notification delivery.
	go utils.NotifyOrderWA(orderNotification(order, items))

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order created",
		"id":      order.ID,
		"total":   order.Total,
	})
}

// GetOrders lists all orders for the admin panel, newest first.
func GetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if limit < 1 || limit > maxOrderPageSize {
		limit = 15
	}
	offset := (page - 1) * limit

	var orders []models.Order
	result := initializers.DB.
		Preload("Items").
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&orders)
	if result.Error != nil {
		sendServerError(ctx, "Unable to fetch orders", result.Error)
		return
	}

	responses := make([]orderResponse, len(orders))
	for i, order := range orders {
		responses[i] = buildOrderResponse(order)
	}

	var count int64
	initializers.DB.Model(&models.Order{}).Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": responses,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasPrevPage": page > 1,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

// GetMyOrders lists the caller's own orders.
func GetMyOrders(ctx *gin.Context) {
	userID := userIDFromContext(ctx)
	if userID == nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var orders []models.Order
	result := initializers.DB.
		Preload("Items").
		Where("user_id = ?", *userID).
		Order("id desc").
		Find(&orders)
	if result.Error != nil {
		sendServerError(ctx, "Unable to fetch orders", result.Error)
		return
	}

	responses := make([]orderResponse, len(orders))
	for i, order := range orders {
		responses[i] = buildOrderResponse(order)
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetOrderByID returns one order. Non-admin callers only see their own
// orders; anything else reads as not found.
func GetOrderByID(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order id")
		return
	}

	var order models.Order
	result := initializers.DB.Preload("Items").First(&order, orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			sendServerError(ctx, "Unable to fetch order", result.Error)
		}
		return
	}

	if !isAdmin(ctx) {
		userID := userIDFromContext(ctx)
		if userID == nil || order.UserID == nil || *order.UserID != *userID {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}
	}

	ctx.JSON(http.StatusOK, buildOrderResponse(order))
}

// UpdateOrderStatus updates status and/or payment status; at least one field
// is required. Line items are never touched.
func UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order id")
		return
	}

	var statusData struct {
		Status             string `json:"status"`
		PaymentStatus      string `json:"paymentStatus"`
		PaymentStatusSnake string `json:"payment_status"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if statusData.PaymentStatus == "" {
		statusData.PaymentStatus = statusData.PaymentStatusSnake
	}

	updates := map[string]any{}
	if statusData.Status != "" {
		updates["status"] = statusData.Status
	}
	if statusData.PaymentStatus != "" {
		updates["payment_status"] = statusData.PaymentStatus
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Nothing to update")
		return
	}

	result := initializers.DB.Model(&models.Order{}).Where("id = ?", orderID).Updates(updates)
	if result.Error != nil {
		sendServerError(ctx, "Failed to update order", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order updated"})
}

// DeleteOrder removes the order and its line items in one transaction.
func DeleteOrder(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order id")
		return
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		sendServerError(ctx, "Failed to delete order items", err)
		return
	}

	result := tx.Delete(&models.Order{}, orderID)
	if result.Error != nil {
		tx.Rollback()
		sendServerError(ctx, "Failed to delete order", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	if err := tx.Commit().Error; err != nil {
		sendServerError(ctx, "Failed to delete order", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted"})
}
