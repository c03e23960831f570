package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	JWTExpiry      time.Duration
	GoogleClientID string
	AppEnv         string
	UploadDir      string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("ACCESS_TOKEN_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	AppEnv = GetEnv("APP_ENV", "development")
	UploadDir = GetEnv("UPLOAD_DIR", "./uploads")

	JWTExpiry = 24 * time.Hour
	if raw := GetEnv("ACCESS_TOKEN_EXPIRY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			JWTExpiry = d
		} else {
			log.Printf("⚠️ ACCESS_TOKEN_EXPIRY tidak valid (%q), pakai default 24h", raw)
		}
	}

	if JWTSecret == "" {
		log.Println("❌ ACCESS_TOKEN_SECRET belum diset!")
	} else {
		log.Println("✅ ACCESS_TOKEN_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsProduction menentukan atribut cookie (Secure / SameSite=None).
func IsProduction() bool {
	return AppEnv == "production"
}
