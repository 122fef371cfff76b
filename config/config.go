package config

import (
	"log"
	"os"

	"restaurant-catalog-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Config holds all environment-driven settings
type Config struct {
	Port       string
	DBPath     string
	Cloudinary CloudinaryConfig
	// CronSecret guards the cleanup endpoint. Insecure fallback kept for
	// local development when the env var is unset.
	CronSecret string
	IconsDir   string
	PublicDir  string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Load reads .env (if present) and assembles the runtime configuration
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "restaurant.db"),
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		CronSecret: getEnv("CRON_SECRET", "daily_cleanup_key"),
		IconsDir:   getEnv("ICONS_DIR", "public/icons/categories"),
		PublicDir:  getEnv("PUBLIC_DIR", "public"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Category{},
		&models.Meal{},
		&models.MealSize{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
