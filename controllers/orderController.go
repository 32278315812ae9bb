package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kurniasari-api/config"
	"kurniasari-api/dtos"
	"kurniasari-api/models"
	"kurniasari-api/utils"
)

// Create order (checkout flow)
func CreateOrder(c *gin.Context) {
	var input dtos.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var total float64
	var orderItems []models.OrderItem
	for _, i := range input.Items {
		subtotal := float64(i.Quantity) * i.Price
		total += subtotal
		orderItems = append(orderItems, models.OrderItem{
			Name:     i.Name,
			Quantity: i.Quantity,
			Price:    i.Price,
			Subtotal: subtotal,
		})
	}

	order := models.Order{
		OrderNumber:   utils.GenerateOrderNumber(),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Note:          input.Note,
		Total:         total,
		PaymentStatus: models.PaymentPending,
		Items:         orderItems,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

// Get all orders with pagination and optional filters
func GetOrders(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")
	filterDate := c.Query("date")
	filterStatus := c.Query("payment_status")

	page, _ := strconv.Atoi(pageStr)
	limit, _ := strconv.Atoi(limitStr)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var orders []models.Order
	var total int64

	db := config.DB.Model(&models.Order{})

	if filterDate != "" {
		start, err := time.Parse("2006-01-02", filterDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date must be YYYY-MM-DD"})
			return
		}
		end := start.Add(24 * time.Hour)
		db = db.Where("created_at >= ? AND created_at < ?", start, end)
	}
	if filterStatus != "" {
		db = db.Where("payment_status = ?", filterStatus)
	}

	if err := db.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := db.Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       orders,
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": int((total + int64(limit) - 1) / int64(limit)),
	})
}

// Get order by order number
func GetOrderByNumber(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var order models.Order
	if err := config.DB.Preload("Items").Preload("ShippingImages").
		Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// Public order lookup for customers. Reads local state only; the gateway
// is never probed here.
func GetPublicOrder(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var order models.Order
	if err := config.DB.Preload("Items").
		Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"order_number":   order.OrderNumber,
		"customer_name":  order.CustomerName,
		"payment_status": order.PaymentStatus,
		"total":          order.Total,
		"items":          order.Items,
		"created_at":     order.CreatedAt,
	})
}

// Delete order (admin only, pending orders only; items go with it)
func DeleteOrder(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var order models.Order
	if err := config.DB.Preload("Items").
		Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	if order.PaymentStatus != models.PaymentPending {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Only pending orders can be deleted"})
		return
	}

	actorID := utils.GetUserID(c)
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&order).Error; err != nil {
			return err
		}
		return utils.CreateOrderAuditLog(tx, "delete", order.ID, &order, nil, actorID, c.ClientIP(),
			"order deleted by admin")
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
}
