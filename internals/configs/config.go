package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string
	TimeZone  *time.Location
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

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	// Zona waktu "hari ini" untuk semua aturan absensi (validator, review,
	// koreksi). Satu zona untuk seluruh proses, tidak per-request.
	tzName := GetEnv("APP_TIMEZONE")
	if tzName == "" {
		tzName = "Asia/Jakarta"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("⚠️ APP_TIMEZONE %q tidak valid, fallback ke UTC", tzName)
		loc = time.UTC
	}
	TimeZone = loc
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
