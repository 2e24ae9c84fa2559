package controller

import (
	"regexp"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance_reports/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type ReportController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Service: service.New(db)}
}

/* ===================== HARIAN ===================== */
// GET /api/u/reports/attendance/daily?date=YYYY-MM-DD&class_id=&section_id=
func (ctrl *ReportController) DailySummary(c *fiber.Ctx) error {
	schoolID, err := helperAuth.SchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	date, err := helper.ParseDate(c.Query("date"))
	if err != nil {
		return err
	}

	classID, err := optionalUUID(c, "class_id")
	if err != nil {
		return err
	}
	sectionID, err := optionalUUID(c, "section_id")
	if err != nil {
		return err
	}

	out, err := ctrl.Service.DailySummary(schoolID, date, classID, sectionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun laporan harian")
	}
	return helper.Success(c, "OK", out)
}

/* ===================== REKAP SISWA ===================== */
// GET /api/u/reports/attendance/student-monthly?student_id=&month=YYYY-MM
func (ctrl *ReportController) StudentMonthly(c *fiber.Ctx) error {
	schoolID, err := helperAuth.SchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	studentID, err := requiredUUID(c, "student_id")
	if err != nil {
		return err
	}
	month, err := requiredMonth(c)
	if err != nil {
		return err
	}

	out, err := ctrl.Service.StudentMonthly(schoolID, studentID, month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun rekap siswa")
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/reports/attendance/student-range?student_id=&from=&to=
func (ctrl *ReportController) StudentRange(c *fiber.Ctx) error {
	schoolID, err := helperAuth.SchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	studentID, err := requiredUUID(c, "student_id")
	if err != nil {
		return err
	}
	from, err := helper.ParseDate(c.Query("from"))
	if err != nil {
		return err
	}
	to, err := helper.ParseDate(c.Query("to"))
	if err != nil {
		return err
	}
	if to.Before(from) {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter from harus ≤ to")
	}

	out, err := ctrl.Service.StudentRange(schoolID, studentID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun rekap siswa")
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/reports/attendance/student-history?student_id=&limit=
func (ctrl *ReportController) StudentHistory(c *fiber.Ctx) error {
	schoolID, err := helperAuth.SchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	studentID, err := requiredUUID(c, "student_id")
	if err != nil {
		return err
	}

	limit := 90
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 366 {
			return fiber.NewError(fiber.StatusBadRequest, "Parameter limit tidak valid")
		}
		limit = n
	}

	out, err := ctrl.Service.StudentHistory(schoolID, studentID, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca riwayat siswa")
	}
	return helper.Success(c, "OK", out)
}

/* ===================== REKAP SECTION ===================== */
// GET /api/u/reports/attendance/section-monthly?section_id=&month=YYYY-MM
func (ctrl *ReportController) SectionMonthly(c *fiber.Ctx) error {
	schoolID, err := helperAuth.SchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	sectionID, err := requiredUUID(c, "section_id")
	if err != nil {
		return err
	}
	month, err := requiredMonth(c)
	if err != nil {
		return err
	}

	out, err := ctrl.Service.SectionMonthly(schoolID, sectionID, month)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun rekap section")
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/reports/attendance/defaulters?section_id=&month=&threshold=75
func (ctrl *ReportController) Defaulters(c *fiber.Ctx) error {
	schoolID, err := helperAuth.SchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	sectionID, err := requiredUUID(c, "section_id")
	if err != nil {
		return err
	}
	month, err := requiredMonth(c)
	if err != nil {
		return err
	}

	threshold := 75.0
	if raw := c.Query("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "Parameter threshold tidak valid")
		}
		threshold = v
	}

	out, err := ctrl.Service.Defaulters(schoolID, sectionID, month, threshold)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun daftar defaulters")
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/reports/attendance/trend?section_id=&academic_year=2025-26
func (ctrl *ReportController) Trend(c *fiber.Ctx) error {
	schoolID, err := helperAuth.SchoolIDFromLocals(c)
	if err != nil {
		return err
	}

	sectionID, err := requiredUUID(c, "section_id")
	if err != nil {
		return err
	}

	year := c.Query("academic_year")
	if year == "" {
		year = helper.CurrentAcademicYear(helper.Today())
	}

	out, err := ctrl.Service.Trend(schoolID, sectionID, year)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyusun tren kehadiran")
	}
	return helper.Success(c, "OK", out)
}

/* ===================== PARSER QUERY ===================== */

func requiredUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Query(key))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Parameter "+key+" tidak valid")
	}
	return id, nil
}

func optionalUUID(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Parameter "+key+" tidak valid")
	}
	return &id, nil
}

func requiredMonth(c *fiber.Ctx) (string, error) {
	month := c.Query("month")
	if !monthPattern.MatchString(month) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Parameter month harus berformat YYYY-MM")
	}
	return month, nil
}
