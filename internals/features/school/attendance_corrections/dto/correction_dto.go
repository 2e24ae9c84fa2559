package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance_corrections/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RaiseCorrectionRequest struct {
	AttendanceID    uuid.UUID `json:"attendance_id" validate:"required"`
	StudentID       uuid.UUID `json:"student_id" validate:"required"`
	RequestedStatus string    `json:"requested_status" validate:"required,oneof=present absent leave late half_day on_leave"`
	Reason          string    `json:"reason" validate:"required,min=5,max=200"`
}

type ReviewCorrectionRequest struct {
	Action  string  `json:"action" validate:"required,oneof=APPROVE REJECT"`
	Remarks *string `json:"remarks" validate:"omitempty,max=300"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ReviewStamp struct {
	By      *uuid.UUID `json:"by"`
	At      *time.Time `json:"at"`
	Remarks *string    `json:"remarks"`
}

type CorrectionResponse struct {
	CorrectionID uuid.UUID `json:"correction_id"`
	AttendanceID uuid.UUID `json:"attendance_id"`
	StudentID    uuid.UUID `json:"student_id"`

	ClassID      uuid.UUID `json:"class_id"`
	SectionID    uuid.UUID `json:"section_id"`
	Date         string    `json:"date"`
	AcademicYear string    `json:"academic_year"`

	OldStatus       string `json:"old_status"`
	RequestedStatus string `json:"requested_status"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`

	RequestedBy   uuid.UUID `json:"requested_by"`
	RequestedRole string    `json:"requested_role"`

	CoordinatorReview ReviewStamp `json:"coordinator_review"`
	AdminReview       ReviewStamp `json:"admin_review"`

	CreatedAt time.Time `json:"created_at"`
}

func NewCorrectionResponse(mdl m.AttendanceCorrectionModel) CorrectionResponse {
	return CorrectionResponse{
		CorrectionID:    mdl.AttendanceCorrectionID,
		AttendanceID:    mdl.AttendanceCorrectionAttendanceID,
		StudentID:       mdl.AttendanceCorrectionStudentID,
		ClassID:         mdl.AttendanceCorrectionClassID,
		SectionID:       mdl.AttendanceCorrectionSectionID,
		Date:            mdl.AttendanceCorrectionDate.Format("2006-01-02"),
		AcademicYear:    mdl.AttendanceCorrectionAcademicYear,
		OldStatus:       mdl.AttendanceCorrectionOldStatus,
		RequestedStatus: mdl.AttendanceCorrectionRequestedStatus,
		Reason:          mdl.AttendanceCorrectionReason,
		Status:          mdl.AttendanceCorrectionStatus,
		RequestedBy:     mdl.AttendanceCorrectionRequestedBy,
		RequestedRole:   mdl.AttendanceCorrectionRequestedRole,
		CoordinatorReview: ReviewStamp{
			By:      mdl.AttendanceCorrectionCoordinatorBy,
			At:      mdl.AttendanceCorrectionCoordinatorAt,
			Remarks: mdl.AttendanceCorrectionCoordinatorRemarks,
		},
		AdminReview: ReviewStamp{
			By:      mdl.AttendanceCorrectionAdminBy,
			At:      mdl.AttendanceCorrectionAdminAt,
			Remarks: mdl.AttendanceCorrectionAdminRemarks,
		},
		CreatedAt: mdl.AttendanceCorrectionCreatedAt,
	}
}
