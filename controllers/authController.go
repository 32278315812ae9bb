package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kurniasari-api/config"
	"kurniasari-api/dtos"
	"kurniasari-api/services"
)

func Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp, err := services.NewAuthService(config.DB).Login(input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
