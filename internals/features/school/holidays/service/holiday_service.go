package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/school/holidays/model"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

func (s *Service) CreateHoliday(orgID, schoolID, createdBy uuid.UUID, date time.Time, name, htype string) (m.HolidayModel, error) {
	if htype == "" {
		htype = "GENERAL"
	}
	row := m.HolidayModel{
		HolidayOrgID:     orgID,
		HolidaySchoolID:  schoolID,
		HolidayDate:      date,
		HolidayName:      name,
		HolidayType:      htype,
		HolidayStatus:    "active",
		HolidayCreatedBy: createdBy,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return m.HolidayModel{}, fiber.NewError(fiber.StatusConflict,
				"Hari libur untuk tanggal "+date.Format("2006-01-02")+" sudah ada.")
		}
		return m.HolidayModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat hari libur")
	}
	return row, nil
}

// ListHolidays, filter opsional bulan (YYYY-MM).
func (s *Service) ListHolidays(schoolID uuid.UUID, month *string) ([]m.HolidayModel, error) {
	q := s.DB.
		Where("holiday_school_id = ? AND holiday_status = 'active'", schoolID).
		Order("holiday_date ASC")
	if month != nil && *month != "" {
		q = q.Where("to_char(holiday_date, 'YYYY-MM') = ?", *month)
	}
	var rows []m.HolidayModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// IsHoliday: dipakai validator marking & koreksi.
func (s *Service) IsHoliday(schoolID uuid.UUID, date time.Time) (bool, error) {
	var row m.HolidayModel
	err := s.DB.
		Where("holiday_school_id = ? AND holiday_date = ? AND holiday_status = 'active'", schoolID, date.Format("2006-01-02")).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	// 23505 = unique_violation di Postgres; cek string supaya tidak perlu
	// import driver error type di layer service.
	return err != nil && strings.Contains(err.Error(), "23505")
}
