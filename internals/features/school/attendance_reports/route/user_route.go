package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance_reports/controller"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	grp := r.Group("/reports/attendance")
	grp.Get("/daily", ctrl.DailySummary)
	grp.Get("/student-monthly", ctrl.StudentMonthly)
	grp.Get("/section-monthly", ctrl.SectionMonthly)
	grp.Get("/defaulters", ctrl.Defaulters)
	grp.Get("/trend", ctrl.Trend)
	grp.Get("/student-range", ctrl.StudentRange)
	grp.Get("/student-history", ctrl.StudentHistory)
}
