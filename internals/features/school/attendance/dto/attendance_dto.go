package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type MarkRecordItem struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent leave late half_day on_leave"`
}

type MarkAttendanceRequest struct {
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	SectionID uuid.UUID  `json:"section_id" validate:"required"`
	SubjectID *uuid.UUID `json:"subject_id" validate:"omitempty"`

	// YYYY-MM-DD
	Date    string           `json:"date" validate:"required"`
	Records []MarkRecordItem `json:"records" validate:"required,min=1,dive"`
}

func (r MarkAttendanceRequest) ToEntries() m.StudentEntries {
	out := make(m.StudentEntries, 0, len(r.Records))
	for _, item := range r.Records {
		out = append(out, m.StudentEntry{
			StudentID: item.StudentID,
			Status:    item.Status,
		})
	}
	return out
}

type ReviewAttendanceRequest struct {
	Action  string  `json:"action" validate:"required,oneof=APPROVE REJECT"`
	Remarks *string `json:"remarks" validate:"omitempty,max=300"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceReviewResponse struct {
	ReviewedBy *uuid.UUID `json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	Remarks    *string    `json:"remarks"`
}

type AttendanceResponse struct {
	AttendanceID uuid.UUID        `json:"attendance_id"`
	ClassID      uuid.UUID        `json:"class_id"`
	SectionID    uuid.UUID        `json:"section_id"`
	SubjectID    *uuid.UUID       `json:"subject_id"`
	AcademicYear string           `json:"academic_year"`
	Date         string           `json:"date"`
	Records      m.StudentEntries `json:"records"`
	Status       string           `json:"status"`
	Locked       bool             `json:"locked"`
	MarkedBy     uuid.UUID        `json:"marked_by"`

	Review AttendanceReviewResponse `json:"review"`
}

func NewAttendanceResponse(mdl m.AttendanceRecordModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: mdl.AttendanceRecordID,
		ClassID:      mdl.AttendanceRecordClassID,
		SectionID:    mdl.AttendanceRecordSectionID,
		SubjectID:    mdl.AttendanceRecordSubjectID,
		AcademicYear: mdl.AttendanceRecordAcademicYear,
		Date:         mdl.AttendanceRecordDate.Format("2006-01-02"),
		Records:      mdl.AttendanceRecordRecords,
		Status:       mdl.AttendanceRecordStatus,
		Locked:       mdl.AttendanceRecordLocked,
		MarkedBy:     mdl.AttendanceRecordMarkedBy,
		Review: AttendanceReviewResponse{
			ReviewedBy: mdl.AttendanceRecordReviewedBy,
			ReviewedAt: mdl.AttendanceRecordReviewedAt,
			Remarks:    mdl.AttendanceRecordReviewRemarks,
		},
	}
}
