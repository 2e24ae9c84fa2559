package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/students/dto"
	m "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// FindStudents mengambil field yang dibutuhkan validator absensi saja.
func (s *Service) FindStudents(ids []uuid.UUID) ([]m.StudentModel, error) {
	var rows []m.StudentModel
	err := s.DB.
		Select("student_id, student_school_id, student_class_id, student_section_id, student_status").
		Where("student_id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RegisterStudent mendaftarkan siswa dengan nomor urut otomatis per
// (class, section, tahun ajaran).
func (s *Service) RegisterStudent(orgID, schoolID uuid.UUID, req dto.RegisterStudentRequest) (m.StudentModel, error) {
	academicYear := helper.CurrentAcademicYear(helper.Today())

	rollNo, err := s.NextRollNumber(schoolID, req.ClassID, req.SectionID, academicYear)
	if err != nil {
		return m.StudentModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil nomor urut siswa")
	}

	row := m.StudentModel{
		StudentOrgID:        orgID,
		StudentSchoolID:     schoolID,
		StudentClassID:      req.ClassID,
		StudentSectionID:    req.SectionID,
		StudentName:         req.Name,
		StudentRollNo:       rollNo,
		StudentAcademicYear: academicYear,
		StudentStatus:       "active",
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return m.StudentModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}
	return row, nil
}

// ListStudents untuk admin, filter opsional class/section.
func (s *Service) ListStudents(schoolID uuid.UUID, f dto.FilterStudentRequest, offset, limit int) ([]m.StudentModel, int64, error) {
	q := s.DB.Model(&m.StudentModel{}).
		Where("student_school_id = ? AND student_status = 'active'", schoolID)
	if f.ClassID != nil {
		q = q.Where("student_class_id = ?", *f.ClassID)
	}
	if f.SectionID != nil {
		q = q.Where("student_section_id = ?", *f.SectionID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []m.StudentModel
	if err := q.Order("student_roll_no ASC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// NextRollNumber: nomor urut berikutnya untuk section pada tahun ajaran,
// aman terhadap request paralel (single-statement upsert).
func (s *Service) NextRollNumber(schoolID, classID, sectionID uuid.UUID, academicYear string) (int, error) {
	key := fmt.Sprintf("%s_%s_%s_%s_roll_no", schoolID, academicYear, classID, sectionID)

	var seq int
	err := s.DB.Raw(`
		INSERT INTO roll_number_sequences (roll_number_sequence_key, roll_number_sequence_seq)
		VALUES (?, 1)
		ON CONFLICT (roll_number_sequence_key)
		DO UPDATE SET roll_number_sequence_seq = roll_number_sequences.roll_number_sequence_seq + 1
		RETURNING roll_number_sequence_seq
	`, key).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}
