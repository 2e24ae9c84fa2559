package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/audit/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuditController(db)
	r.Get("/audit-logs", ctrl.ListAuditLogs)
}
