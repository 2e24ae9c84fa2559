package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentOrgID    uuid.UUID `gorm:"type:uuid;not null;column:student_org_id" json:"student_org_id"`
	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_school_id" json:"student_school_id"`

	StudentClassID   uuid.UUID `gorm:"type:uuid;not null;index;column:student_class_id" json:"student_class_id"`
	StudentSectionID uuid.UUID `gorm:"type:uuid;not null;index;column:student_section_id" json:"student_section_id"`

	StudentName         string `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`
	StudentRollNo       int    `gorm:"not null;column:student_roll_no" json:"student_roll_no"`
	StudentAcademicYear string `gorm:"type:varchar(10);not null;column:student_academic_year" json:"student_academic_year"`

	StudentStatus    string    `gorm:"type:varchar(20);not null;default:active;column:student_status" json:"student_status"`
	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
}

func (StudentModel) TableName() string { return "students" }

// Counter nomor urut per (school, class, section, tahun ajaran).
// Ditambah atomik lewat upsert `seq = seq + 1 RETURNING`.
type RollNumberSequenceModel struct {
	RollNumberSequenceKey string `gorm:"type:varchar(200);primaryKey;column:roll_number_sequence_key" json:"roll_number_sequence_key"`
	RollNumberSequenceSeq int    `gorm:"not null;default:0;column:roll_number_sequence_seq" json:"roll_number_sequence_seq"`
}

func (RollNumberSequenceModel) TableName() string { return "roll_number_sequences" }
