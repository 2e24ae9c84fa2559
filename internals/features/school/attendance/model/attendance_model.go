package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
 * STATUS
 * ========================================================= */

const (
	StatusSubmitted = "SUBMITTED"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
)

// Status kehadiran per siswa
const (
	EntryPresent = "present"
	EntryAbsent  = "absent"
	EntryLeave   = "leave"
	EntryLate    = "late"
	EntryHalfDay = "half_day"
	EntryOnLeave = "on_leave"
)

func ValidEntryStatus(s string) bool {
	switch s {
	case EntryPresent, EntryAbsent, EntryLeave, EntryLate, EntryHalfDay, EntryOnLeave:
		return true
	}
	return false
}

/* =========================================================
 * ENTRI SISWA (embedded list, kolom JSONB)
 * ========================================================= */

type StudentEntry struct {
	StudentID        uuid.UUID  `json:"student_id"`
	Status           string     `json:"status"`
	Corrected        bool       `json:"corrected"`
	CorrectionID     *uuid.UUID `json:"correction_id,omitempty"`
	CorrectionReason *string    `json:"correction_reason,omitempty"`
}

type StudentEntries []StudentEntry

func (e StudentEntries) Value() (driver.Value, error) {
	if e == nil {
		e = StudentEntries{}
	}
	return json.Marshal(e)
}

func (e *StudentEntries) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	case nil:
		*e = StudentEntries{}
		return nil
	}
	return errors.New("StudentEntries: tipe kolom tidak didukung")
}

// Merge: entri baru menimpa entri lama ber-student_id sama, sisanya
// dipertahankan — submit bisa bertahap per sebagian roster. Urutan lama
// dijaga, entri baru menempel di belakang.
func (e StudentEntries) Merge(incoming StudentEntries) StudentEntries {
	byID := make(map[uuid.UUID]int, len(e))
	out := make(StudentEntries, len(e))
	copy(out, e)
	for i, entry := range out {
		byID[entry.StudentID] = i
	}
	for _, in := range incoming {
		if i, ok := byID[in.StudentID]; ok {
			out[i] = in
		} else {
			byID[in.StudentID] = len(out)
			out = append(out, in)
		}
	}
	return out
}

// Find mengembalikan pointer ke entri siswa di dalam slice (nil kalau absen).
func (e StudentEntries) Find(studentID uuid.UUID) *StudentEntry {
	for i := range e {
		if e[i].StudentID == studentID {
			return &e[i]
		}
	}
	return nil
}

/* =========================================================
 * DOKUMEN ABSENSI HARIAN
 * ========================================================= */

// Satu baris per slot (school, class, section, subject-or-null, tahun, date).
// Keunikan dijamin index COALESCE di databases.Migrate.
type AttendanceRecordModel struct {
	AttendanceRecordID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordOrgID    uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_org_id" json:"attendance_record_org_id"`
	AttendanceRecordSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_school_id" json:"attendance_record_school_id"`

	AttendanceRecordClassID   uuid.UUID  `gorm:"type:uuid;not null;column:attendance_record_class_id" json:"attendance_record_class_id"`
	AttendanceRecordSectionID uuid.UUID  `gorm:"type:uuid;not null;index;column:attendance_record_section_id" json:"attendance_record_section_id"`
	AttendanceRecordSubjectID *uuid.UUID `gorm:"type:uuid;column:attendance_record_subject_id" json:"attendance_record_subject_id,omitempty"`

	AttendanceRecordAcademicYear string    `gorm:"type:varchar(10);not null;column:attendance_record_academic_year" json:"attendance_record_academic_year"`
	AttendanceRecordDate         time.Time `gorm:"type:date;not null;index;column:attendance_record_date" json:"attendance_record_date"`

	AttendanceRecordRecords StudentEntries `gorm:"type:jsonb;not null;column:attendance_record_records" json:"attendance_record_records"`

	AttendanceRecordStatus   string    `gorm:"type:varchar(20);not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordLocked   bool      `gorm:"not null;default:false;column:attendance_record_locked" json:"attendance_record_locked"`
	AttendanceRecordMarkedBy uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_marked_by" json:"attendance_record_marked_by"`

	AttendanceRecordReviewedBy    *uuid.UUID `gorm:"type:uuid;column:attendance_record_reviewed_by" json:"attendance_record_reviewed_by,omitempty"`
	AttendanceRecordReviewedAt    *time.Time `gorm:"column:attendance_record_reviewed_at" json:"attendance_record_reviewed_at,omitempty"`
	AttendanceRecordReviewRemarks *string    `gorm:"column:attendance_record_review_remarks" json:"attendance_record_review_remarks,omitempty"`

	AttendanceRecordCreatedAt time.Time  `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
