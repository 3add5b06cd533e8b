package config

import (
	"crypto/subtle"
	"log"
	"os"
	"strconv"
	"time"

	"liquor-store-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs the admin dashboard tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "liquor_store_super_secret_2024"))

// Admin secret, read once at startup. AdminPasswordHash, when set, takes
// precedence over AdminPassword and holds a bcrypt hash.
var (
	AdminPassword     = os.Getenv("ADMIN_PASSWORD")
	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// AdminPasswordMatches checks the supplied password against the configured
// secret. Returns false when no secret is configured at all.
func AdminPasswordMatches(password string) bool {
	if AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(AdminPasswordHash), []byte(password)) == nil
	}
	if AdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(AdminPassword), []byte(password)) == 1
}

// OrderPollInterval is the admin live-view refresh interval.
func OrderPollInterval() time.Duration {
	if v := os.Getenv("ORDER_POLL_INTERVAL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
		log.Printf("Invalid ORDER_POLL_INTERVAL %q, falling back to 3s", v)
	}
	return 3 * time.Second
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "liquor_store.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Orders must outlive the catalog rows they reference, so no
		// DB-level foreign keys
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Liquor{},
		&models.Order{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if AdminPassword == "" && AdminPasswordHash == "" {
		log.Println("⚠️  ADMIN_PASSWORD not set — admin login is disabled")
	}

	log.Println("✅ Database connected and migrated successfully")
}
