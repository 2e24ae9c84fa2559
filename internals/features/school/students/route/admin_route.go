package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/students/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)
	r.Post("/students", ctrl.RegisterStudent)
	r.Get("/students", ctrl.ListStudents)
}
