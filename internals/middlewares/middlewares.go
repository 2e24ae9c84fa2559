package middlewares

import (
	"github.com/gofiber/fiber/v2"

	logger "sekolahku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan tetap:
// recovery → cors → logger → rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
