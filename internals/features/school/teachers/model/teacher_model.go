package model

import (
	"time"

	"github.com/google/uuid"
)

// Profil guru minimum yang dibutuhkan registry (validasi "guru aktif").
// CRUD guru lengkap ada di layanan kepegawaian terpisah.
type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherOrgID    uuid.UUID `gorm:"type:uuid;not null;column:teacher_org_id" json:"teacher_org_id"`
	TeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:teacher_school_id" json:"teacher_school_id"`
	TeacherUserID   uuid.UUID `gorm:"type:uuid;not null;column:teacher_user_id" json:"teacher_user_id"`

	TeacherName   string `gorm:"type:varchar(120);not null;column:teacher_name" json:"teacher_name"`
	TeacherStatus string `gorm:"type:varchar(20);not null;default:active;column:teacher_status" json:"teacher_status"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
