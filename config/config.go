package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RekhaKadam/sonna-s-cafe/models"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "sonnas_cafe_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "8080")
}

// DBPath is the sqlite file backing the key-value records.
func DBPath() string {
	return getEnv("DB_PATH", "sonnas_cafe.db")
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(DBPath()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate the records table backing the KV store
	if err := DB.AutoMigrate(&models.Record{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
