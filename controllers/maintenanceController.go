package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kurniasari-api/config"
	"kurniasari-api/services"
	"kurniasari-api/utils"
)

func maintenanceService() services.MaintenanceService {
	return services.NewMaintenanceService(config.DB, reconcileService(), config.Log)
}

// Report deliverymen that cannot be assigned anywhere
func GetOrphanedDeliverymen(c *gin.Context) {
	orphans, err := maintenanceService().OrphanedDeliverymen()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orphans": orphans, "count": len(orphans)})
}

// Resync the oldest pending orders against the gateway
func BulkResyncPayments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := maintenanceService().BulkResyncPending(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "results": entries, "count": len(entries)})
}

// Reset a user's password (admin only, audited)
func ResetPassword(c *gin.Context) {
	var input struct {
		Username    string `json:"username" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := maintenanceService().ResetPassword(input.Username, input.NewPassword, utils.GetUserID(c), c.ClientIP()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset"})
}
