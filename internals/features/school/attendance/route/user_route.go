package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance/controller"
	"sekolahku_backend/internals/middlewares"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	grp := r.Group("/attendance", middlewares.AttendanceWriteRateLimiter())
	grp.Post("/mark", ctrl.MarkAttendance)
	grp.Post("/:id/review", ctrl.ReviewAttendance)
}
