package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/holidays/dto"
	"sekolahku_backend/internals/features/school/holidays/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type HolidayController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{DB: db, Service: service.New(db)}
}

/* ===================== CREATE (ADMIN) ===================== */
// POST /api/a/holidays
func (ctrl *HolidayController) CreateHoliday(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := helper.ParseDate(req.Date)
	if err != nil {
		return err
	}

	row, err := ctrl.Service.CreateHoliday(admin.OrgID, admin.SchoolID, admin.UserID, date, req.Name, req.Type)
	if err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Hari libur dibuat", dto.NewHolidayResponse(row))
}

/* ===================== LIST ===================== */
// GET /api/u/holidays?month=YYYY-MM
func (ctrl *HolidayController) ListHolidays(c *fiber.Ctx) error {
	schoolID, err := helperAuth.SchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	var q dto.FilterHolidayRequest
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}

	rows, err := ctrl.Service.ListHolidays(schoolID, q.Month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca hari libur")
	}

	out := make([]dto.HolidayResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewHolidayResponse(r))
	}
	return helper.Success(c, "OK", out)
}
