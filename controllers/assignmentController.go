package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kurniasari-api/config"
	"kurniasari-api/dtos"
	"kurniasari-api/services"
	"kurniasari-api/utils"
)

// Assign an order to a deliveryman at an outlet
func AssignOrder(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var input dtos.AssignOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	svc := services.NewAssignmentService(config.DB, config.Log)
	result, err := svc.AssignOrder(c.Request.Context(), orderNumber, input, utils.GetUserID(c), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		case errors.Is(err, services.ErrInvalidDeliveryman):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Deliveryman not found or has wrong role"})
		case errors.Is(err, services.ErrInvalidOutlet):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Outlet not found"})
		case errors.Is(err, services.ErrOutletInactive):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Outlet is inactive"})
		case errors.Is(err, services.ErrOutletMismatch):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Deliveryman belongs to a different outlet"})
		case errors.Is(err, services.ErrAlreadyAssigned):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Order already assigned, set force to reassign"})
		case errors.Is(err, services.ErrConcurrentModification):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Order was assigned concurrently, reload and retry"})
		default:
			config.Log.Error("assignment failed",
				zap.String("order_number", orderNumber), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"assignment":          result.Assignment,
		"previous_assignment": result.PreviousAssignment,
	})
}

// Options for the assignment UI: active outlets + deliverymen
func GetAssignmentOptions(c *gin.Context) {
	svc := services.NewAssignmentService(config.DB, config.Log)
	options, err := svc.ListAssignmentOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outlets":        options.Outlets,
		"delivery_users": options.DeliveryUsers,
	})
}
