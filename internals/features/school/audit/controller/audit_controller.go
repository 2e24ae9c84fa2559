package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/audit/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AuditController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewAuditController(db *gorm.DB) *AuditController {
	return &AuditController{DB: db, Service: service.New(db)}
}

// GET /api/a/audit-logs?entity_id=...
func (ctrl *AuditController) ListAuditLogs(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	var entityID *uuid.UUID
	if raw := c.Query("entity_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "entity_id tidak valid")
		}
		entityID = &id
	}

	p := helper.ResolvePaging(c, 20, 200)
	rows, total, err := ctrl.Service.ListByEntity(admin.SchoolID, entityID, p.Offset, p.Limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca audit log")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPagination(total, p, len(rows)),
	})
}
