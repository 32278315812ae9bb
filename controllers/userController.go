package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kurniasari-api/config"
	"kurniasari-api/models"
)

// Get all users (admin only)
func GetUsers(c *gin.Context) {
	var users []models.User
	db := config.DB
	if c.Query("role") != "" {
		db = db.Where("role = ?", c.Query("role"))
	}
	if err := db.Order("username").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}
