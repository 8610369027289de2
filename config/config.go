package config

import (
	"encoding/base64"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	MONGOSTRING   string
	PASETO_SECRET string

	// Staff gate. ADMIN_PIN_HASH (bcrypt) wins over the plain pin
	// when both are set.
	AdminPIN     string
	AdminPINHash string

	EventName    string
	RequirePhoto bool

	// Photo blob storage. Driver is "gridfs" or "s3".
	StorageDriver string
	PublicBaseURL string
	S3Bucket      string
	S3Region      string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string

	SeedDemo bool
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	// Dev-only default, 32 bytes after decoding. Override in production.
	secretBase64 := getEnv("PASETO_SECRET", "QUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUE=")

	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET in .env is not a valid Base64 URL-encoded string: %v", err)
	}

	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET (decoded) must be exactly 32 bytes long. Current length: %d", len(secretBytes))
	}

	return &AppConfig{
		Port:          getEnv("PORT", "3000"),
		MONGOSTRING:   getEnv("MONGOSTRING", ""),
		PASETO_SECRET: secretBase64,
		AdminPIN:      getEnv("ADMIN_PIN", "1234"),
		AdminPINHash:  getEnv("ADMIN_PIN_HASH", ""),
		EventName:     getEnv("EVENT_NAME", "Main Event"),
		RequirePhoto:  getEnv("REQUIRE_PHOTO", "true") == "true",
		StorageDriver: getEnv("STORAGE_DRIVER", "gridfs"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		S3Bucket:      getEnv("S3_BUCKET", "attendee-photos"),
		S3Region:      getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:    getEnv("S3_ENDPOINT", "http://127.0.0.1:9000"),
		S3AccessKey:   getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:   getEnv("S3_SECRET_KEY", ""),
		SeedDemo:      getEnv("SEED_DEMO", "false") == "true",
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
