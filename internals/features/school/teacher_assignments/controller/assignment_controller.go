package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/teacher_assignments/dto"
	"sekolahku_backend/internals/features/school/teacher_assignments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type TeacherAssignmentController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewTeacherAssignmentController(db *gorm.DB) *TeacherAssignmentController {
	return &TeacherAssignmentController{DB: db, Service: service.New(db)}
}

/* ===================== ASSIGN ===================== */
// POST /api/a/teacher-assignments
func (ctrl *TeacherAssignmentController) AssignTeacher(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Service.AssignTeacher(req, admin.OrgID, admin.SchoolID, admin.UserID)
	if err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Guru berhasil ditugaskan", dto.NewAssignmentResponse(row))
}

/* ===================== UNASSIGN ===================== */
// DELETE /api/a/teacher-assignments/:id
func (ctrl *TeacherAssignmentController) UnassignTeacher(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	if err := ctrl.Service.UnassignTeacher(id, admin.SchoolID); err != nil {
		return err
	}
	return helper.Success(c, "Penugasan guru dinonaktifkan", nil)
}

/* ===================== LIST ===================== */
// GET /api/a/teacher-assignments
func (ctrl *TeacherAssignmentController) ListAssignments(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	var f dto.FilterAssignmentRequest
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 200)
	rows, total, err := ctrl.Service.ListAssignments(admin.SchoolID, f, p.Offset, p.Limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca assignment")
	}

	out := make([]dto.AssignmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewAssignmentResponse(r))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPagination(total, p, len(out)),
	})
}

/* ===================== KOORDINATOR ===================== */
// POST /api/a/section-coordinators
func (ctrl *TeacherAssignmentController) AssignCoordinator(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.AssignCoordinatorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, created, err := ctrl.Service.AssignCoordinator(req.SectionID, req.TeacherID, admin.OrgID, admin.SchoolID)
	if err != nil {
		return err
	}

	msg := "Koordinator berhasil ditugaskan"
	if !created {
		msg = "Guru sudah menjadi koordinator section ini"
	}
	return helper.Success(c, msg, dto.NewCoordinatorResponse(row))
}
