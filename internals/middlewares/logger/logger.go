package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"sekolahku_backend/internals/configs"
)

// LoggerMiddleware mencatat semua request di zona waktu aplikasi.
func LoggerMiddleware() fiber.Handler {
	tz := "Asia/Jakarta"
	if configs.TimeZone != nil {
		tz = configs.TimeZone.String()
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   tz,
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
