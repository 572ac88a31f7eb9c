package config

import (
	"log"
	"os"

	"food-rescue-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_rescue_super_secret_2024"))

// UploadDir holds listing images; served under the /uploads static prefix
var UploadDir = getEnv("UPLOAD_DIR", "uploads")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv loads a local .env file unless running in production
func LoadEnv() {
	if os.Getenv("ENV") != "production" {
		godotenv.Load()
	}
}

func InitDB() {
	var dialector gorm.Dialector
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		// Pure-Go SQLite keeps local dev free of a Postgres dependency
		dialector = sqlite.Open(getEnv("SQLITE_PATH", "food_rescue.db"))
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodListing{},
		&models.Request{},
		&models.Feedback{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
