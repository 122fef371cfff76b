package routes

import (
	"restaurant-catalog-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")
	{
		// Catalog
		api.GET("/categories", h.ListCategories)
		api.POST("/categories", h.SaveCategory)
		api.DELETE("/categories", h.DeleteCategory)

		api.GET("/meals", h.ListMeals)
		api.POST("/meals", h.SaveMeal)
		api.DELETE("/meals", h.DeleteMeal)

		// Static category icons
		api.GET("/icons", h.ListIcons)

		// Admin image upload
		api.POST("/upload", h.Upload)

		// Orders
		api.POST("/orders", h.PlaceOrder)
		api.GET("/orders", h.ListOrders)

		// Scheduled maintenance, guarded by the cron key
		api.GET("/cron/cleanup", h.Cleanup)
	}
}
