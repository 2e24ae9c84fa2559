package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance_policy/dto"
	m "sekolahku_backend/internals/features/school/attendance_policy/model"
	"sekolahku_backend/internals/features/school/attendance_policy/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendancePolicyController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewAttendancePolicyController(db *gorm.DB) *AttendancePolicyController {
	return &AttendancePolicyController{DB: db, Service: service.New(db)}
}

/* ===================== SET (ADMIN) ===================== */
// POST /api/a/attendance-policy
func (ctrl *AttendancePolicyController) SetPolicy(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.SetPolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	pastDays := m.DefaultPastDaysAllowed
	if req.PastDaysAllowed != nil {
		pastDays = *req.PastDaysAllowed
	}
	windowDays := m.DefaultCorrectionWindowDays
	if req.CorrectionWindowDays != nil {
		windowDays = *req.CorrectionWindowDays
	}

	row, err := ctrl.Service.SetPolicy(admin.SchoolID, m.AttendanceMode(req.Mode), pastDays, windowDays)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan attendance policy")
	}

	return helper.Success(c, "Attendance policy disimpan", dto.NewPolicyResponse(row))
}

/* ===================== GET ===================== */
// GET /api/u/attendance-policy
func (ctrl *AttendancePolicyController) GetPolicy(c *fiber.Ctx) error {
	schoolID, err := helperAuth.SchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	row, err := ctrl.Service.GetPolicy(schoolID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca attendance policy")
	}

	return helper.Success(c, "OK", dto.NewPolicyResponse(row))
}
