package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/teacher_assignments/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateAssignmentRequest struct {
	TeacherID    uuid.UUID `json:"teacher_id" validate:"required"`
	ClassID      uuid.UUID `json:"class_id" validate:"required"`
	SectionID    uuid.UUID `json:"section_id" validate:"required"`
	SubjectID    uuid.UUID `json:"subject_id" validate:"required"`
	AcademicYear string    `json:"academic_year" validate:"required,max=10"`
	RoleType     string    `json:"role_type" validate:"required,oneof=PRIMARY CO_TEACHER SUBSTITUTE"`

	// Wajib kalau role SUBSTITUTE
	SubstituteFrom *string `json:"substitute_from" validate:"omitempty,datetime=2006-01-02"`
	SubstituteTo   *string `json:"substitute_to" validate:"omitempty,datetime=2006-01-02"`
}

type FilterAssignmentRequest struct {
	ClassID   *uuid.UUID `query:"class_id" validate:"omitempty"`
	SectionID *uuid.UUID `query:"section_id" validate:"omitempty"`
	TeacherID *uuid.UUID `query:"teacher_id" validate:"omitempty"`
}

type AssignCoordinatorRequest struct {
	SectionID uuid.UUID `json:"section_id" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AssignmentResponse struct {
	AssignmentID   uuid.UUID `json:"assignment_id"`
	TeacherID      uuid.UUID `json:"teacher_id"`
	ClassID        uuid.UUID `json:"class_id"`
	SectionID      uuid.UUID `json:"section_id"`
	SubjectID      uuid.UUID `json:"subject_id"`
	AcademicYear   string    `json:"academic_year"`
	RoleType       string    `json:"role_type"`
	SubstituteFrom *string   `json:"substitute_from,omitempty"`
	SubstituteTo   *string   `json:"substitute_to,omitempty"`
	Status         string    `json:"status"`
	AssignedAt     time.Time `json:"assigned_at"`
}

func NewAssignmentResponse(mdl m.TeacherAssignmentModel) AssignmentResponse {
	resp := AssignmentResponse{
		AssignmentID: mdl.TeacherAssignmentID,
		TeacherID:    mdl.TeacherAssignmentTeacherID,
		ClassID:      mdl.TeacherAssignmentClassID,
		SectionID:    mdl.TeacherAssignmentSectionID,
		SubjectID:    mdl.TeacherAssignmentSubjectID,
		AcademicYear: mdl.TeacherAssignmentAcademicYear,
		RoleType:     string(mdl.TeacherAssignmentRoleType),
		Status:       mdl.TeacherAssignmentStatus,
		AssignedAt:   mdl.TeacherAssignmentCreatedAt,
	}
	if mdl.TeacherAssignmentSubstituteFrom != nil {
		s := mdl.TeacherAssignmentSubstituteFrom.Format("2006-01-02")
		resp.SubstituteFrom = &s
	}
	if mdl.TeacherAssignmentSubstituteTo != nil {
		s := mdl.TeacherAssignmentSubstituteTo.Format("2006-01-02")
		resp.SubstituteTo = &s
	}
	return resp
}

type CoordinatorResponse struct {
	CoordinatorID uuid.UUID `json:"coordinator_id"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	SectionID     uuid.UUID `json:"section_id"`
	Status        string    `json:"status"`
	AssignedAt    time.Time `json:"assigned_at"`
}

func NewCoordinatorResponse(mdl m.SectionCoordinatorModel) CoordinatorResponse {
	return CoordinatorResponse{
		CoordinatorID: mdl.SectionCoordinatorID,
		TeacherID:     mdl.SectionCoordinatorTeacherID,
		SectionID:     mdl.SectionCoordinatorSectionID,
		Status:        mdl.SectionCoordinatorStatus,
		AssignedAt:    mdl.SectionCoordinatorAssignedAt,
	}
}
