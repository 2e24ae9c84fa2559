package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RegisterStudentRequest struct {
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	Name      string    `json:"name" validate:"required,min=2,max=120"`
}

type FilterStudentRequest struct {
	ClassID   *uuid.UUID `query:"class_id" validate:"omitempty"`
	SectionID *uuid.UUID `query:"section_id" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type StudentResponse struct {
	StudentID    uuid.UUID `json:"student_id"`
	ClassID      uuid.UUID `json:"class_id"`
	SectionID    uuid.UUID `json:"section_id"`
	Name         string    `json:"name"`
	RollNo       int       `json:"roll_no"`
	AcademicYear string    `json:"academic_year"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewStudentResponse(mdl m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:    mdl.StudentID,
		ClassID:      mdl.StudentClassID,
		SectionID:    mdl.StudentSectionID,
		Name:         mdl.StudentName,
		RollNo:       mdl.StudentRollNo,
		AcademicYear: mdl.StudentAcademicYear,
		Status:       mdl.StudentStatus,
		CreatedAt:    mdl.StudentCreatedAt,
	}
}
