package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/attendance_corrections/dto"
	"sekolahku_backend/internals/features/school/attendance_corrections/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type CorrectionController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewCorrectionController(db *gorm.DB) *CorrectionController {
	return &CorrectionController{DB: db, Service: service.New(db)}
}

/* ===================== RAISE ===================== */
// POST /api/u/attendance-corrections
func (ctrl *CorrectionController) RaiseRequest(c *fiber.Ctx) error {
	tc, err := helperAuth.TeacherFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.RaiseCorrectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Service.RaiseRequest(tc, helperAuth.RoleFromLocals(c), req)
	if err != nil {
		return err
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajuan koreksi dibuat", dto.NewCorrectionResponse(row))
}

/* ===================== REVIEW KOORDINATOR ===================== */
// POST /api/u/attendance-corrections/:id/coordinator-review
func (ctrl *CorrectionController) CoordinatorReview(c *fiber.Ctx) error {
	tc, err := helperAuth.TeacherFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}

	var req dto.ReviewCorrectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Service.CoordinatorReview(tc, id, req)
	if err != nil {
		return err
	}
	return helper.Success(c, "Review koordinator tersimpan", dto.NewCorrectionResponse(row))
}

/* ===================== PUTUSAN ADMIN ===================== */
// POST /api/a/attendance-corrections/:id/admin-review
func (ctrl *CorrectionController) AdminReview(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}

	var req dto.ReviewCorrectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.Service.AdminReview(admin, id, req)
	if err != nil {
		return err
	}

	msg := "Koreksi diterapkan"
	if req.Action == "REJECT" {
		msg = "Pengajuan koreksi ditolak"
	}
	return helper.Success(c, msg, dto.NewCorrectionResponse(row))
}

/* ===================== ANTREAN ===================== */
// GET /api/u/attendance-corrections/pending
func (ctrl *CorrectionController) PendingRequests(c *fiber.Ctx) error {
	role := helperAuth.RoleFromLocals(c)

	// Admin tidak punya teacher_id di token — antreannya difilter per role
	// di service, jadi cukup school_id.
	var tc helperAuth.TeacherContext
	if role == constants.RoleAdmin {
		admin, err := helperAuth.AdminFromLocals(c)
		if err != nil {
			return err
		}
		tc.SchoolID = admin.SchoolID
		tc.UserID = admin.UserID
	} else {
		var err error
		tc, err = helperAuth.TeacherFromLocals(c)
		if err != nil {
			return err
		}
	}

	rows, err := ctrl.Service.PendingRequests(tc.SchoolID, role, tc)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca antrean koreksi")
	}

	out := make([]dto.CorrectionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewCorrectionResponse(r))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/a/attendance-corrections?status=...
func (ctrl *CorrectionController) AllRequests(c *fiber.Ctx) error {
	admin, err := helperAuth.AdminFromLocals(c)
	if err != nil {
		return err
	}

	var status *string
	if raw := c.Query("status"); raw != "" {
		status = &raw
	}

	p := helper.ResolvePaging(c, 20, 200)
	rows, total, err := ctrl.Service.AllRequests(admin.SchoolID, status, p.Offset, p.Limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca pengajuan koreksi")
	}

	out := make([]dto.CorrectionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewCorrectionResponse(r))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPagination(total, p, len(out)),
	})
}
