package model

import (
	"time"

	"github.com/google/uuid"
)

// Mode absensi sebagai varian tertutup. Setiap titik keputusan wajib
// switch exhaustive; mode asing = salah konfigurasi (500), bukan salah caller.
type AttendanceMode string

const (
	ModeCoordinatorOnly AttendanceMode = "COORDINATOR_ONLY"
	ModeSubjectTeacher  AttendanceMode = "SUBJECT_TEACHER"
)

func (m AttendanceMode) Valid() bool {
	switch m {
	case ModeCoordinatorOnly, ModeSubjectTeacher:
		return true
	}
	return false
}

const (
	DefaultPastDaysAllowed      = 0
	DefaultCorrectionWindowDays = 3
)

// Satu baris konfigurasi per sekolah, di-upsert oleh admin.
type AttendancePolicyModel struct {
	AttendancePolicyID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_policy_id" json:"attendance_policy_id"`
	AttendancePolicySchoolID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:attendance_policy_school_id" json:"attendance_policy_school_id"`
	AttendancePolicyMode     AttendanceMode `gorm:"type:varchar(20);not null;default:COORDINATOR_ONLY;column:attendance_policy_mode" json:"attendance_policy_mode"`

	AttendancePolicyPastDaysAllowed      int `gorm:"not null;default:0;column:attendance_policy_past_days_allowed" json:"attendance_policy_past_days_allowed"`
	AttendancePolicyCorrectionWindowDays int `gorm:"not null;default:3;column:attendance_policy_correction_window_days" json:"attendance_policy_correction_window_days"`

	AttendancePolicyCreatedAt time.Time  `gorm:"column:attendance_policy_created_at;autoCreateTime" json:"attendance_policy_created_at"`
	AttendancePolicyUpdatedAt *time.Time `gorm:"column:attendance_policy_updated_at;autoUpdateTime" json:"attendance_policy_updated_at,omitempty"`
}

func (AttendancePolicyModel) TableName() string { return "attendance_policies" }
