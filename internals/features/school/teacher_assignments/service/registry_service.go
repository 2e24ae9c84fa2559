package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/teacher_assignments/dto"
	m "sekolahku_backend/internals/features/school/teacher_assignments/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

/* =========================================================
 * GUARD MURNI (tanpa DB) — dipakai AssignTeacher & unit test
 * ========================================================= */

// ValidateSubstituteWindow: SUBSTITUTE wajib punya [from,to] dengan from ≤ to;
// role lain tidak boleh bawa window.
func ValidateSubstituteWindow(role m.AssignmentRole, from, to *time.Time) error {
	if role == m.RoleSubstitute {
		if from == nil || to == nil {
			return fiber.NewError(fiber.StatusBadRequest, "SUBSTITUTE wajib punya rentang tanggal substitute_from/substitute_to.")
		}
		if to.Before(*from) {
			return fiber.NewError(fiber.StatusBadRequest, "substitute_from harus ≤ substitute_to.")
		}
		return nil
	}
	if from != nil || to != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Rentang substitute hanya untuk role SUBSTITUTE.")
	}
	return nil
}

// DecideAssignRole memutus aturan hierarki role terhadap kondisi existing:
// satu PRIMARY aktif per tuple; CO_TEACHER/SUBSTITUTE butuh PRIMARY aktif;
// guru tidak boleh pegang dua role aktif di tuple yang sama.
func DecideAssignRole(role m.AssignmentRole, primaryExists bool, duplicateRole m.AssignmentRole) error {
	if duplicateRole != "" {
		return fiber.NewError(fiber.StatusBadRequest, "Guru sudah ditugaskan sebagai "+string(duplicateRole)+" untuk subject ini.")
	}
	if role == m.RolePrimary {
		if primaryExists {
			return fiber.NewError(fiber.StatusBadRequest, "Sudah ada guru PRIMARY untuk subject ini. Unassign dulu sebelum mengganti.")
		}
		return nil
	}
	if !primaryExists {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak bisa assign "+string(role)+" tanpa guru PRIMARY aktif.")
	}
	return nil
}

/* =========================================================
 * ASSIGNMENT GURU
 * ========================================================= */

func (s *Service) AssignTeacher(req dto.CreateAssignmentRequest, orgID, schoolID, assignedBy uuid.UUID) (m.TeacherAssignmentModel, error) {
	role := m.AssignmentRole(req.RoleType)
	if !role.Valid() {
		return m.TeacherAssignmentModel{}, fiber.NewError(fiber.StatusBadRequest, "role_type tidak dikenal")
	}

	var from, to *time.Time
	if req.SubstituteFrom != nil {
		t, err := helper.ParseDate(*req.SubstituteFrom)
		if err != nil {
			return m.TeacherAssignmentModel{}, err
		}
		from = &t
	}
	if req.SubstituteTo != nil {
		t, err := helper.ParseDate(*req.SubstituteTo)
		if err != nil {
			return m.TeacherAssignmentModel{}, err
		}
		to = &t
	}
	if err := ValidateSubstituteWindow(role, from, to); err != nil {
		return m.TeacherAssignmentModel{}, err
	}

	// Guru harus ada & aktif di sekolah ini
	var teacher teacherModel.TeacherModel
	err := s.DB.
		Where("teacher_id = ? AND teacher_school_id = ? AND teacher_status = 'active'", req.TeacherID, schoolID).
		Take(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.TeacherAssignmentModel{}, fiber.NewError(fiber.StatusBadRequest, "Guru tidak valid atau tidak aktif")
	}
	if err != nil {
		return m.TeacherAssignmentModel{}, err
	}

	// PRIMARY aktif untuk tuple (class, section, subject, tahun)?
	var primaryCount int64
	if err := s.scopeTuple(schoolID, req.ClassID, req.SectionID, req.SubjectID, req.AcademicYear).
		Where("teacher_assignment_role_type = ?", m.RolePrimary).
		Count(&primaryCount).Error; err != nil {
		return m.TeacherAssignmentModel{}, err
	}

	// Guru ini sudah pegang role aktif di tuple yang sama?
	var dup m.TeacherAssignmentModel
	dupRole := m.AssignmentRole("")
	err = s.scopeTuple(schoolID, req.ClassID, req.SectionID, req.SubjectID, req.AcademicYear).
		Where("teacher_assignment_teacher_id = ?", req.TeacherID).
		Take(&dup).Error
	if err == nil {
		dupRole = dup.TeacherAssignmentRoleType
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return m.TeacherAssignmentModel{}, err
	}

	if err := DecideAssignRole(role, primaryCount > 0, dupRole); err != nil {
		return m.TeacherAssignmentModel{}, err
	}

	row := m.TeacherAssignmentModel{
		TeacherAssignmentOrgID:          orgID,
		TeacherAssignmentSchoolID:       schoolID,
		TeacherAssignmentTeacherID:      req.TeacherID,
		TeacherAssignmentClassID:        req.ClassID,
		TeacherAssignmentSectionID:      req.SectionID,
		TeacherAssignmentSubjectID:      req.SubjectID,
		TeacherAssignmentAcademicYear:   req.AcademicYear,
		TeacherAssignmentRoleType:       role,
		TeacherAssignmentSubstituteFrom: from,
		TeacherAssignmentSubstituteTo:   to,
		TeacherAssignmentStatus:         "active",
		TeacherAssignmentAssignedBy:     assignedBy,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return m.TeacherAssignmentModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan assignment")
	}
	return row, nil
}

func (s *Service) UnassignTeacher(assignmentID, schoolID uuid.UUID) error {
	res := s.DB.Model(&m.TeacherAssignmentModel{}).
		Where("teacher_assignment_id = ? AND teacher_assignment_school_id = ? AND teacher_assignment_status = 'active'",
			assignmentID, schoolID).
		Update("teacher_assignment_status", "inactive")
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Assignment tidak ditemukan atau sudah nonaktif")
	}
	return nil
}

func (s *Service) ListAssignments(schoolID uuid.UUID, f dto.FilterAssignmentRequest, offset, limit int) ([]m.TeacherAssignmentModel, int64, error) {
	q := s.DB.Model(&m.TeacherAssignmentModel{}).
		Where("teacher_assignment_school_id = ? AND teacher_assignment_status = 'active'", schoolID)
	if f.ClassID != nil {
		q = q.Where("teacher_assignment_class_id = ?", *f.ClassID)
	}
	if f.SectionID != nil {
		q = q.Where("teacher_assignment_section_id = ?", *f.SectionID)
	}
	if f.TeacherID != nil {
		q = q.Where("teacher_assignment_teacher_id = ?", *f.TeacherID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []m.TeacherAssignmentModel
	if err := q.Order("teacher_assignment_created_at DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// HasValidAssignment: PRIMARY aktif, atau SUBSTITUTE aktif dengan asOf di
// dalam window. Dipakai validator marking mode SUBJECT_TEACHER.
func (s *Service) HasValidAssignment(teacherID, classID, sectionID, subjectID uuid.UUID, asOf time.Time) (bool, error) {
	var rows []m.TeacherAssignmentModel
	err := s.DB.
		Where(`teacher_assignment_teacher_id = ?
			AND teacher_assignment_class_id = ?
			AND teacher_assignment_section_id = ?
			AND teacher_assignment_subject_id = ?
			AND teacher_assignment_status = 'active'`,
			teacherID, classID, sectionID, subjectID).
		Find(&rows).Error
	if err != nil {
		return false, err
	}
	for _, a := range rows {
		if a.AuthorizesAttendance(asOf) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) scopeTuple(schoolID, classID, sectionID, subjectID uuid.UUID, year string) *gorm.DB {
	return s.DB.Model(&m.TeacherAssignmentModel{}).
		Where(`teacher_assignment_school_id = ?
			AND teacher_assignment_class_id = ?
			AND teacher_assignment_section_id = ?
			AND teacher_assignment_subject_id = ?
			AND teacher_assignment_academic_year = ?
			AND teacher_assignment_status = 'active'`,
			schoolID, classID, sectionID, subjectID, year)
}

/* =========================================================
 * KOORDINATOR SECTION
 * ========================================================= */

func (s *Service) AssignCoordinator(sectionID, teacherID, orgID, schoolID uuid.UUID) (m.SectionCoordinatorModel, bool, error) {
	// Guru harus ada & aktif
	var teacher teacherModel.TeacherModel
	err := s.DB.
		Where("teacher_id = ? AND teacher_school_id = ? AND teacher_status = 'active'", teacherID, schoolID).
		Take(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.SectionCoordinatorModel{}, false, fiber.NewError(fiber.StatusBadRequest, "Guru tidak valid atau tidak aktif")
	}
	if err != nil {
		return m.SectionCoordinatorModel{}, false, err
	}

	// Satu guru maksimal satu section aktif
	var existing m.SectionCoordinatorModel
	err = s.DB.
		Where("section_coordinator_teacher_id = ? AND section_coordinator_status = 'active'", teacherID).
		Take(&existing).Error
	if err == nil {
		if existing.SectionCoordinatorSectionID == sectionID {
			// sudah terpasang — no-op
			return existing, false, nil
		}
		return m.SectionCoordinatorModel{}, false, fiber.NewError(fiber.StatusBadRequest, "Guru sudah menjadi koordinator section lain")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return m.SectionCoordinatorModel{}, false, err
	}

	var row m.SectionCoordinatorModel
	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Satu section satu koordinator: nonaktifkan yang lama
		if err := tx.Model(&m.SectionCoordinatorModel{}).
			Where("section_coordinator_section_id = ? AND section_coordinator_status = 'active'", sectionID).
			Updates(map[string]interface{}{
				"section_coordinator_status":     "inactive",
				"section_coordinator_removed_at": now,
			}).Error; err != nil {
			return err
		}

		row = m.SectionCoordinatorModel{
			SectionCoordinatorOrgID:     orgID,
			SectionCoordinatorSchoolID:  schoolID,
			SectionCoordinatorTeacherID: teacherID,
			SectionCoordinatorSectionID: sectionID,
			SectionCoordinatorStatus:    "active",
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return m.SectionCoordinatorModel{}, false, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan koordinator")
	}
	return row, true, nil
}

func (s *Service) IsActiveCoordinator(teacherID, sectionID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.Model(&m.SectionCoordinatorModel{}).
		Where(`section_coordinator_teacher_id = ?
			AND section_coordinator_section_id = ?
			AND section_coordinator_status = 'active'`,
			teacherID, sectionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CoordinatorSectionIDs: semua section yang dikoordinatori guru (untuk
// filter antrean koreksi). Praktisnya 0 atau 1 baris.
func (s *Service) CoordinatorSectionIDs(teacherID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.Model(&m.SectionCoordinatorModel{}).
		Where("section_coordinator_teacher_id = ? AND section_coordinator_status = 'active'", teacherID).
		Pluck("section_coordinator_section_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
