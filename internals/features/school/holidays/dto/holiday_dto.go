package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/holidays/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateHolidayRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Name string `json:"name" validate:"required,max=120"`
	Type string `json:"type" validate:"omitempty,oneof=GENERAL NATIONAL RELIGIOUS SCHOOL_EVENT"`
}

type FilterHolidayRequest struct {
	// YYYY-MM
	Month *string `query:"month" validate:"omitempty,len=7"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type HolidayResponse struct {
	HolidayID uuid.UUID `json:"holiday_id"`
	Date      string    `json:"date"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func NewHolidayResponse(mdl m.HolidayModel) HolidayResponse {
	return HolidayResponse{
		HolidayID: mdl.HolidayID,
		Date:      mdl.HolidayDate.Format("2006-01-02"),
		Name:      mdl.HolidayName,
		Type:      mdl.HolidayType,
		CreatedAt: mdl.HolidayCreatedAt,
	}
}
