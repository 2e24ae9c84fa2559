package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Service: service.New(db)}
}

/* ===================== MARK ===================== */
// POST /api/u/attendance/mark
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	tc, err := helperAuth.TeacherFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Service.MarkAttendance(tc, req)
	if err != nil {
		return err
	}
	return helper.Success(c, "Absensi tersimpan", dto.NewAttendanceResponse(row))
}

/* ===================== REVIEW ===================== */
// POST /api/u/attendance/:id/review
func (ctrl *AttendanceController) ReviewAttendance(c *fiber.Ctx) error {
	tc, err := helperAuth.TeacherFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID absensi tidak valid")
	}

	var req dto.ReviewAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Service.ReviewAttendance(tc, id, req)
	if err != nil {
		return err
	}

	msg := "Absensi disetujui"
	if req.Action == "REJECT" {
		msg = "Absensi ditolak"
	}
	return helper.Success(c, msg, dto.NewAttendanceResponse(row))
}
