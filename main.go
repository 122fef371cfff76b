package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"restaurant-catalog-api/cache"
	"restaurant-catalog-api/catalog"
	"restaurant-catalog-api/config"
	"restaurant-catalog-api/handlers"
	"restaurant-catalog-api/middleware"
	"restaurant-catalog-api/routes"
	"restaurant-catalog-api/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Initialize database
	config.InitDB(cfg.DBPath)

	local := storage.NewLocalStore(cfg.PublicDir)

	// Cloudinary when credentials are present, local disk otherwise
	var images storage.ImageStore = local
	if cfg.Cloudinary.CloudName != "" {
		cld, err := storage.NewCloudinaryStore(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Fatal("Failed to configure Cloudinary:", err)
		}
		images = cld
	}

	svc := catalog.New(config.DB, cache.New(), images, local)
	h := handlers.New(svc, images, middleware.SharedKeyAuth{
		Secret:    cfg.CronSecret,
		Principal: "cron",
	}, cfg.IconsDir)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for the admin and storefront pages
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Serve uploaded images and static category icons
	r.Static("/uploads", cfg.PublicDir+"/uploads")
	r.Static("/icons", cfg.PublicDir+"/icons")

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Catalog API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
