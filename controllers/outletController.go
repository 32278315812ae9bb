package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kurniasari-api/config"
	"kurniasari-api/models"
)

// Get all outlets
func GetOutlets(c *gin.Context) {
	var outlets []models.Outlet
	db := config.DB
	if c.Query("status") != "" {
		db = db.Where("status = ?", c.Query("status"))
	}
	if err := db.Order("name").Find(&outlets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "outlets": outlets})
}

// Create outlet
func CreateOutlet(c *gin.Context) {
	var input struct {
		Name          string  `json:"name" binding:"required"`
		Status        string  `json:"status" binding:"omitempty,oneof=active inactive"`
		LocationAlias *string `json:"location_alias,omitempty"`
		Address       *string `json:"address,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	outlet := models.Outlet{
		Name:          input.Name,
		Status:        models.OutletActive,
		LocationAlias: input.LocationAlias,
		Address:       input.Address,
	}
	if input.Status != "" {
		outlet.Status = input.Status
	}

	if err := config.DB.Create(&outlet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "outlet": outlet})
}

// Update outlet fields, including activating/deactivating
func UpdateOutlet(c *gin.Context) {
	id := c.Param("id")

	var outlet models.Outlet
	if err := config.DB.First(&outlet, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Outlet not found"})
		return
	}

	var input struct {
		Name          *string `json:"name,omitempty"`
		Status        *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
		LocationAlias *string `json:"location_alias,omitempty"`
		Address       *string `json:"address,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if input.Name != nil {
		outlet.Name = *input.Name
	}
	if input.Status != nil {
		outlet.Status = *input.Status
	}
	if input.LocationAlias != nil {
		outlet.LocationAlias = input.LocationAlias
	}
	if input.Address != nil {
		outlet.Address = input.Address
	}

	if err := config.DB.Save(&outlet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "outlet": outlet})
}
