package routes

import (
	"github.com/gin-gonic/gin"

	"kurniasari-api/config"
	"kurniasari-api/controllers"
	"kurniasari-api/middlewares"
	"kurniasari-api/models"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/login", controllers.Login)

	// Public order lookup for the storefront
	r.GET("/public/orders/:orderNumber", controllers.GetPublicOrder)

	// Assignment options for the admin UI
	options := r.Group("/api/assignment-options")
	options.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware(models.RoleAdmin, models.RoleOutletStaff))
	{
		options.GET("", controllers.GetAssignmentOptions)
	}

	// Admin order management
	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware(models.RoleAdmin, models.RoleOutletStaff))
	{
		admin.POST("/orders", controllers.CreateOrder)
		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/:orderNumber", controllers.GetOrderByNumber)
		admin.DELETE("/orders/:orderNumber", middlewares.RoleMiddleware(models.RoleAdmin), controllers.DeleteOrder)

		admin.POST("/orders/:orderNumber/sync-payment-status",
			middlewares.RedisRateLimit(config.Redis, config.App.SyncRateLimit, config.App.SyncRateWindow),
			controllers.SyncPaymentStatus)
		admin.POST("/orders/:orderNumber/assign", controllers.AssignOrder)

		admin.POST("/orders/:orderNumber/shipping-images", controllers.AddShippingImage)
		admin.GET("/orders/:orderNumber/shipping-images", controllers.GetShippingImages)

		admin.GET("/outlets", controllers.GetOutlets)
		admin.POST("/outlets", middlewares.RoleMiddleware(models.RoleAdmin), controllers.CreateOutlet)
		admin.PUT("/outlets/:id", middlewares.RoleMiddleware(models.RoleAdmin), controllers.UpdateOutlet)

		admin.GET("/users", middlewares.RoleMiddleware(models.RoleAdmin), controllers.GetUsers)
	}

	// Maintenance (admin only)
	maintenance := r.Group("/api/admin/maintenance")
	maintenance.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware(models.RoleAdmin))
	{
		maintenance.GET("/orphaned-deliverymen", controllers.GetOrphanedDeliverymen)
		maintenance.POST("/resync-payments", controllers.BulkResyncPayments)
		maintenance.POST("/reset-password", controllers.ResetPassword)
	}
}
