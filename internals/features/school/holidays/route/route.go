package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/holidays/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHolidayController(db)
	r.Post("/holidays", ctrl.CreateHoliday)
}

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHolidayController(db)
	r.Get("/holidays", ctrl.ListHolidays)
}
