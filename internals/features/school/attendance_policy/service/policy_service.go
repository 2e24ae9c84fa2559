package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "sekolahku_backend/internals/features/school/attendance_policy/model"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// GetPolicy: baris tidak ada ≠ error — sekolah tanpa konfigurasi memakai
// default (COORDINATOR_ONLY, 0, window koreksi 3 hari).
func (s *Service) GetPolicy(schoolID uuid.UUID) (m.AttendancePolicyModel, error) {
	var row m.AttendancePolicyModel
	err := s.DB.
		Where("attendance_policy_school_id = ?", schoolID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.AttendancePolicyModel{
			AttendancePolicySchoolID:             schoolID,
			AttendancePolicyMode:                 m.ModeCoordinatorOnly,
			AttendancePolicyPastDaysAllowed:      m.DefaultPastDaysAllowed,
			AttendancePolicyCorrectionWindowDays: m.DefaultCorrectionWindowDays,
		}, nil
	}
	if err != nil {
		return m.AttendancePolicyModel{}, err
	}
	return row, nil
}

// SetPolicy upsert per school_id.
func (s *Service) SetPolicy(schoolID uuid.UUID, mode m.AttendanceMode, pastDays, windowDays int) (m.AttendancePolicyModel, error) {
	row := m.AttendancePolicyModel{
		AttendancePolicySchoolID:             schoolID,
		AttendancePolicyMode:                 mode,
		AttendancePolicyPastDaysAllowed:      pastDays,
		AttendancePolicyCorrectionWindowDays: windowDays,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attendance_policy_school_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_policy_mode",
			"attendance_policy_past_days_allowed",
			"attendance_policy_correction_window_days",
			"attendance_policy_updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return m.AttendancePolicyModel{}, err
	}
	return row, nil
}
