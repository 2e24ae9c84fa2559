package dto

import (
	m "sekolahku_backend/internals/features/school/attendance_policy/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type SetPolicyRequest struct {
	Mode                 string `json:"mode" validate:"required,oneof=COORDINATOR_ONLY SUBJECT_TEACHER"`
	PastDaysAllowed      *int   `json:"past_attendance_days_allowed" validate:"omitempty,min=0"`
	CorrectionWindowDays *int   `json:"correction_window_days" validate:"omitempty,min=0"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type PolicyResponse struct {
	Mode                 string `json:"mode"`
	PastDaysAllowed      int    `json:"past_attendance_days_allowed"`
	CorrectionWindowDays int    `json:"correction_window_days"`
}

func NewPolicyResponse(mdl m.AttendancePolicyModel) PolicyResponse {
	return PolicyResponse{
		Mode:                 string(mdl.AttendancePolicyMode),
		PastDaysAllowed:      mdl.AttendancePolicyPastDaysAllowed,
		CorrectionWindowDays: mdl.AttendancePolicyCorrectionWindowDays,
	}
}
