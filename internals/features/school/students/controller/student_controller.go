package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/students/dto"
	"sekolahku_backend/internals/features/school/students/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Service: service.New(db)}
}

/* ===================== REGISTER (ADMIN) ===================== */
// POST /api/a/students
func (ctrl *StudentController) RegisterStudent(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Service.RegisterStudent(admin.OrgID, admin.SchoolID, req)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa terdaftar", dto.NewStudentResponse(row))
}

/* ===================== LIST (ADMIN) ===================== */
// GET /api/a/students
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	var f dto.FilterStudentRequest
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}

	p := helper.ResolvePaging(c, 50, 500)
	rows, total, err := ctrl.Service.ListStudents(admin.SchoolID, f, p.Offset, p.Limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca data siswa")
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewStudentResponse(r))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPagination(total, p, len(out)),
	})
}
