package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kurniasari-api/config"
	"kurniasari-api/gateway"
	"kurniasari-api/services"
)

func reconcileService() services.ReconcileService {
	gw := gateway.NewMidtransClient(
		config.App.MidtransBaseURL,
		config.App.MidtransServerKey,
		config.App.GatewayTimeout,
	)
	return services.NewReconcileService(config.DB, gw, config.Log)
}

// Sync one order's payment status against the gateway
func SyncPaymentStatus(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	result, err := reconcileService().ReconcilePayment(c.Request.Context(), orderNumber)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		case errors.Is(err, services.ErrReconciliationInvalid):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Order unknown to payment gateway, flagged for manual review"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "Gateway reported a backward payment transition, not applied"})
		case errors.Is(err, services.ErrConcurrentModification):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Order was modified concurrently, retry"})
		case errors.Is(err, services.ErrReconciliationDeferred):
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Payment gateway unavailable, retry later"})
		default:
			config.Log.Error("payment sync failed",
				zap.String("order_number", orderNumber), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"payment_status":     result.PaymentStatus,
		"transaction_status": result.TransactionStatus,
		"old_payment_status": result.OldPaymentStatus,
		"changed":            result.Changed,
	})
}
