package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kurniasari-api/config"
	"kurniasari-api/models"
	"kurniasari-api/utils"
)

// Attach shipping-image metadata to an order
func AddShippingImage(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var order models.Order
	if err := config.DB.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	var input struct {
		ImageURL  string `json:"image_url" binding:"required,url"`
		ImageType string `json:"image_type" binding:"omitempty,oneof=shipment_proof package_photo receipt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	image := models.ShippingImage{
		OrderID:    order.ID,
		ImageURL:   input.ImageURL,
		ImageType:  "shipment_proof",
		UploadedBy: utils.GetUserID(c),
	}
	if input.ImageType != "" {
		image.ImageType = input.ImageType
	}

	if err := config.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "shipping_image": image})
}

// List shipping images for an order
func GetShippingImages(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var order models.Order
	if err := config.DB.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	var images []models.ShippingImage
	if err := config.DB.Where("order_id = ?", order.ID).Order("created_at").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "shipping_images": images})
}
