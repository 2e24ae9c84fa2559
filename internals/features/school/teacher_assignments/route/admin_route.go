package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/teacher_assignments/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherAssignmentController(db)
	r.Post("/teacher-assignments", ctrl.AssignTeacher)
	r.Get("/teacher-assignments", ctrl.ListAssignments)
	r.Delete("/teacher-assignments/:id", ctrl.UnassignTeacher)
	r.Post("/section-coordinators", ctrl.AssignCoordinator)
}
