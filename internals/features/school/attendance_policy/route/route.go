package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance_policy/controller"
)

// AdminRoutes: konfigurasi policy hanya untuk school admin.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendancePolicyController(db)
	r.Post("/attendance-policy", ctrl.SetPolicy)
}

// UserRoutes: semua role ber-token boleh baca policy sekolahnya.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendancePolicyController(db)
	r.Get("/attendance-policy", ctrl.GetPolicy)
}
