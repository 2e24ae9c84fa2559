package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
 * STATUS PENGAJUAN KOREKSI
 * ========================================================= */

const (
	CorrectionRequested           = "REQUESTED"
	CorrectionCoordinatorApproved = "COORDINATOR_APPROVED"
	CorrectionApplying            = "APPLYING"
	CorrectionRejected            = "REJECTED"
	CorrectionAdminApproved       = "ADMIN_APPROVED"
)

// OpenStatuses: status yang masih menggantung — dipakai guard
// "satu koreksi terbuka per (attendance, student)".
func OpenStatuses() []string {
	return []string{CorrectionRequested, CorrectionCoordinatorApproved, CorrectionApplying}
}

/* =========================================================
 * BARIS PENGAJUAN
 * ========================================================= */

// Kolom class/section/date/tahun didenormalisasi dari baris absensi supaya
// antrean koordinator bisa difilter tanpa join JSONB.
type AttendanceCorrectionModel struct {
	AttendanceCorrectionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_correction_id" json:"attendance_correction_id"`
	AttendanceCorrectionOrgID    uuid.UUID `gorm:"type:uuid;not null;column:attendance_correction_org_id" json:"attendance_correction_org_id"`
	AttendanceCorrectionSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_correction_school_id" json:"attendance_correction_school_id"`

	AttendanceCorrectionAttendanceID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_correction_attendance_id" json:"attendance_correction_attendance_id"`
	AttendanceCorrectionStudentID    uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_correction_student_id" json:"attendance_correction_student_id"`

	AttendanceCorrectionClassID      uuid.UUID `gorm:"type:uuid;not null;column:attendance_correction_class_id" json:"attendance_correction_class_id"`
	AttendanceCorrectionSectionID    uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_correction_section_id" json:"attendance_correction_section_id"`
	AttendanceCorrectionDate         time.Time `gorm:"type:date;not null;column:attendance_correction_date" json:"attendance_correction_date"`
	AttendanceCorrectionAcademicYear string    `gorm:"type:varchar(10);not null;column:attendance_correction_academic_year" json:"attendance_correction_academic_year"`

	AttendanceCorrectionOldStatus       string `gorm:"type:varchar(20);not null;column:attendance_correction_old_status" json:"attendance_correction_old_status"`
	AttendanceCorrectionRequestedStatus string `gorm:"type:varchar(20);not null;column:attendance_correction_requested_status" json:"attendance_correction_requested_status"`
	AttendanceCorrectionReason          string `gorm:"type:varchar(200);not null;column:attendance_correction_reason" json:"attendance_correction_reason"`

	AttendanceCorrectionStatus string `gorm:"type:varchar(30);not null;index;column:attendance_correction_status" json:"attendance_correction_status"`

	AttendanceCorrectionRequestedBy   uuid.UUID `gorm:"type:uuid;not null;column:attendance_correction_requested_by" json:"attendance_correction_requested_by"`
	AttendanceCorrectionRequestedRole string    `gorm:"type:varchar(20);not null;column:attendance_correction_requested_role" json:"attendance_correction_requested_role"`

	AttendanceCorrectionCoordinatorBy      *uuid.UUID `gorm:"type:uuid;column:attendance_correction_coordinator_by" json:"attendance_correction_coordinator_by,omitempty"`
	AttendanceCorrectionCoordinatorAt      *time.Time `gorm:"column:attendance_correction_coordinator_at" json:"attendance_correction_coordinator_at,omitempty"`
	AttendanceCorrectionCoordinatorRemarks *string    `gorm:"column:attendance_correction_coordinator_remarks" json:"attendance_correction_coordinator_remarks,omitempty"`

	AttendanceCorrectionAdminBy      *uuid.UUID `gorm:"type:uuid;column:attendance_correction_admin_by" json:"attendance_correction_admin_by,omitempty"`
	AttendanceCorrectionAdminAt      *time.Time `gorm:"column:attendance_correction_admin_at" json:"attendance_correction_admin_at,omitempty"`
	AttendanceCorrectionAdminRemarks *string    `gorm:"column:attendance_correction_admin_remarks" json:"attendance_correction_admin_remarks,omitempty"`

	AttendanceCorrectionCreatedAt time.Time  `gorm:"column:attendance_correction_created_at;autoCreateTime" json:"attendance_correction_created_at"`
	AttendanceCorrectionUpdatedAt *time.Time `gorm:"column:attendance_correction_updated_at;autoUpdateTime" json:"attendance_correction_updated_at,omitempty"`
}

func (AttendanceCorrectionModel) TableName() string { return "attendance_corrections" }
