package model

import (
	"time"

	"github.com/google/uuid"
)

// Hari libur per sekolah, unik per (school, tanggal). Dipakai sebagai hard
// block di validator absensi; tidak ada update/delete setelah dibuat.
type HolidayModel struct {
	HolidayID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:holiday_id" json:"holiday_id"`
	HolidayOrgID    uuid.UUID `gorm:"type:uuid;not null;column:holiday_org_id" json:"holiday_org_id"`
	HolidaySchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_holiday_school_date;column:holiday_school_id" json:"holiday_school_id"`

	HolidayDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_holiday_school_date;column:holiday_date" json:"holiday_date"`
	HolidayName string    `gorm:"type:varchar(120);not null;column:holiday_name" json:"holiday_name"`
	HolidayType string    `gorm:"type:varchar(40);not null;default:GENERAL;column:holiday_type" json:"holiday_type"`

	HolidayStatus    string    `gorm:"type:varchar(20);not null;default:active;column:holiday_status" json:"holiday_status"`
	HolidayCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:holiday_created_by" json:"holiday_created_by"`
	HolidayCreatedAt time.Time `gorm:"column:holiday_created_at;autoCreateTime" json:"holiday_created_at"`
}

func (HolidayModel) TableName() string { return "holidays" }
