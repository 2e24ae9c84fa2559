package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance_corrections/controller"
	"sekolahku_backend/internals/middlewares"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCorrectionController(db)
	r.Get("/attendance-corrections", ctrl.AllRequests)
	r.Post("/attendance-corrections/:id/admin-review", ctrl.AdminReview)
}

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCorrectionController(db)

	grp := r.Group("/attendance-corrections")
	grp.Get("/pending", ctrl.PendingRequests)
	grp.Post("/", middlewares.AttendanceWriteRateLimiter(), ctrl.RaiseRequest)
	grp.Post("/:id/coordinator-review", middlewares.AttendanceWriteRateLimiter(), ctrl.CoordinatorReview)
}
