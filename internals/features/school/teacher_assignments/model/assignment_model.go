package model

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentRole string

const (
	RolePrimary    AssignmentRole = "PRIMARY"
	RoleCoTeacher  AssignmentRole = "CO_TEACHER"
	RoleSubstitute AssignmentRole = "SUBSTITUTE"
)

func (r AssignmentRole) Valid() bool {
	switch r {
	case RolePrimary, RoleCoTeacher, RoleSubstitute:
		return true
	}
	return false
}

// Penugasan guru per (class, section, subject, tahun ajaran).
// Soft-delete via status — riwayat substitute harus bisa direkonstruksi
// untuk audit provenance absensi, jadi baris tidak pernah dihapus fisik.
type TeacherAssignmentModel struct {
	TeacherAssignmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_assignment_id" json:"teacher_assignment_id"`
	TeacherAssignmentOrgID    uuid.UUID `gorm:"type:uuid;not null;column:teacher_assignment_org_id" json:"teacher_assignment_org_id"`
	TeacherAssignmentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_assignment_school_id" json:"teacher_assignment_school_id"`

	TeacherAssignmentTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_assignment_teacher_id" json:"teacher_assignment_teacher_id"`
	TeacherAssignmentClassID   uuid.UUID `gorm:"type:uuid;not null;column:teacher_assignment_class_id" json:"teacher_assignment_class_id"`
	TeacherAssignmentSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_assignment_section_id" json:"teacher_assignment_section_id"`
	TeacherAssignmentSubjectID uuid.UUID `gorm:"type:uuid;not null;column:teacher_assignment_subject_id" json:"teacher_assignment_subject_id"`

	TeacherAssignmentAcademicYear string         `gorm:"type:varchar(10);not null;column:teacher_assignment_academic_year" json:"teacher_assignment_academic_year"`
	TeacherAssignmentRoleType     AssignmentRole `gorm:"type:varchar(20);not null;column:teacher_assignment_role_type" json:"teacher_assignment_role_type"`

	// Hanya untuk SUBSTITUTE: rentang inklusif [from, to].
	TeacherAssignmentSubstituteFrom *time.Time `gorm:"type:date;column:teacher_assignment_substitute_from" json:"teacher_assignment_substitute_from,omitempty"`
	TeacherAssignmentSubstituteTo   *time.Time `gorm:"type:date;column:teacher_assignment_substitute_to" json:"teacher_assignment_substitute_to,omitempty"`

	TeacherAssignmentStatus     string     `gorm:"type:varchar(20);not null;default:active;column:teacher_assignment_status" json:"teacher_assignment_status"`
	TeacherAssignmentAssignedBy uuid.UUID  `gorm:"type:uuid;not null;column:teacher_assignment_assigned_by" json:"teacher_assignment_assigned_by"`
	TeacherAssignmentCreatedAt  time.Time  `gorm:"column:teacher_assignment_created_at;autoCreateTime" json:"teacher_assignment_created_at"`
	TeacherAssignmentUpdatedAt  *time.Time `gorm:"column:teacher_assignment_updated_at;autoUpdateTime" json:"teacher_assignment_updated_at,omitempty"`
}

func (TeacherAssignmentModel) TableName() string { return "teacher_assignments" }

// AuthorizesAttendance: PRIMARY selalu; SUBSTITUTE hanya kalau asOf ada di
// dalam window; CO_TEACHER tidak pernah boleh mengisi absensi.
func (a TeacherAssignmentModel) AuthorizesAttendance(asOf time.Time) bool {
	if a.TeacherAssignmentStatus != "active" {
		return false
	}
	switch a.TeacherAssignmentRoleType {
	case RolePrimary:
		return true
	case RoleSubstitute:
		if a.TeacherAssignmentSubstituteFrom == nil || a.TeacherAssignmentSubstituteTo == nil {
			return false
		}
		// Banding tanggal kalender, bukan instant — kolom date vs zona app.
		d := asOf.Format("2006-01-02")
		from := a.TeacherAssignmentSubstituteFrom.Format("2006-01-02")
		to := a.TeacherAssignmentSubstituteTo.Format("2006-01-02")
		return d >= from && d <= to
	case RoleCoTeacher:
		return false
	}
	return false
}

// Koordinator section: satu koordinator aktif per section, satu section per
// guru. Penggantian dilakukan lewat soft-deactivate baris lama.
type SectionCoordinatorModel struct {
	SectionCoordinatorID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:section_coordinator_id" json:"section_coordinator_id"`
	SectionCoordinatorOrgID    uuid.UUID `gorm:"type:uuid;not null;column:section_coordinator_org_id" json:"section_coordinator_org_id"`
	SectionCoordinatorSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:section_coordinator_school_id" json:"section_coordinator_school_id"`

	SectionCoordinatorTeacherID uuid.UUID `gorm:"type:uuid;not null;index;column:section_coordinator_teacher_id" json:"section_coordinator_teacher_id"`
	SectionCoordinatorSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:section_coordinator_section_id" json:"section_coordinator_section_id"`

	SectionCoordinatorStatus     string     `gorm:"type:varchar(20);not null;default:active;column:section_coordinator_status" json:"section_coordinator_status"`
	SectionCoordinatorAssignedAt time.Time  `gorm:"column:section_coordinator_assigned_at;autoCreateTime" json:"section_coordinator_assigned_at"`
	SectionCoordinatorRemovedAt  *time.Time `gorm:"column:section_coordinator_removed_at" json:"section_coordinator_removed_at,omitempty"`
}

func (SectionCoordinatorModel) TableName() string { return "section_coordinators" }
