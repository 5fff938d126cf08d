package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"church_admin/internal/models"
	"church_admin/internal/store"
)

// InitStore connects the persistence layer. STORE_BACKEND=memory runs
// the self-contained demo mode with no database at all; anything else
// opens Postgres through GORM and auto-migrates the schema.
func InitStore() {
	// Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	if getEnv("STORE_BACKEND", "postgres") == "memory" {
		log.Println("Using in-memory store (demo mode)")
		store.Use(store.NewMemoryStore())
		return
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "church_admin")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Application{},
		&models.Member{},
		&models.Transaction{},
		&models.Asset{},
		&models.AssetCategory{},
		&models.Attendance{},
		&models.User{},
	)
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	store.Use(store.NewGormStore(db))
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
