package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance/dto"
	m "sekolahku_backend/internals/features/school/attendance/model"
	policyService "sekolahku_backend/internals/features/school/attendance_policy/service"
	holidayService "sekolahku_backend/internals/features/school/holidays/service"
	studentService "sekolahku_backend/internals/features/school/students/service"
	registryService "sekolahku_backend/internals/features/school/teacher_assignments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type Service struct {
	DB *gorm.DB

	Policies *policyService.Service
	Holidays HolidayLookup
	Registry AssignmentRegistry
	Students StudentLookup
}

func New(db *gorm.DB) *Service {
	return &Service{
		DB:       db,
		Policies: policyService.New(db),
		Holidays: holidayService.New(db),
		Registry: registryService.New(db),
		Students: studentService.New(db),
	}
}

/* =========================================================
 * MARK (submit / resubmit)
 * ========================================================= */

func (s *Service) MarkAttendance(tc helperAuth.TeacherContext, req dto.MarkAttendanceRequest) (m.AttendanceRecordModel, error) {
	policy, err := s.Policies.GetPolicy(tc.SchoolID)
	if err != nil {
		return m.AttendanceRecordModel{}, err
	}

	today := helper.Today()
	decision, err := ValidateMarking(req, policy, tc.SchoolID, tc.TeacherID, today,
		s.Holidays, s.Registry, s.Students)
	if err != nil {
		return m.AttendanceRecordModel{}, err
	}

	academicYear := helper.AcademicYearFor(decision.Date)

	existing, err := s.findSlot(tc.SchoolID, req.ClassID, req.SectionID, decision.SubjectID, academicYear, decision.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return m.AttendanceRecordModel{}, err
	}

	if err == nil {
		return s.mergeIntoExisting(existing, tc, req, decision)
	}

	// Slot belum ada → insert baru
	row := m.AttendanceRecordModel{
		AttendanceRecordOrgID:        tc.OrgID,
		AttendanceRecordSchoolID:     tc.SchoolID,
		AttendanceRecordClassID:      req.ClassID,
		AttendanceRecordSectionID:    req.SectionID,
		AttendanceRecordSubjectID:    decision.SubjectID,
		AttendanceRecordAcademicYear: academicYear,
		AttendanceRecordDate:         decision.Date,
		AttendanceRecordRecords:      req.ToEntries(),
		AttendanceRecordStatus:       decision.Status,
		AttendanceRecordLocked:       decision.Locked,
		AttendanceRecordMarkedBy:     tc.TeacherID,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		if !isUniqueViolation(err) {
			return m.AttendanceRecordModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
		// Balapan insert: baris sudah keburu dibuat request lain — ulangi
		// sekali sebagai merge.
		existing, ferr := s.findSlot(tc.SchoolID, req.ClassID, req.SectionID, decision.SubjectID, academicYear, decision.Date)
		if ferr != nil {
			return m.AttendanceRecordModel{}, fiber.NewError(fiber.StatusConflict, "Absensi untuk slot ini sedang diproses, coba lagi.")
		}
		return s.mergeIntoExisting(existing, tc, req, decision)
	}
	return row, nil
}

// ValidateResubmit: baris terkunci hanya boleh ditimpa oleh keputusan
// koordinator (hasil COORDINATOR_ONLY); guru mapel harus lewat jalur koreksi.
func ValidateResubmit(locked bool, decisionStatus string) error {
	if locked && decisionStatus != m.StatusApproved {
		return fiber.NewError(fiber.StatusConflict,
			"Absensi sudah disetujui dan terkunci. Ajukan koreksi untuk mengubahnya.")
	}
	return nil
}

// mergeIntoExisting: resubmit pada slot yang sama. Entri masuk menimpa
// per-siswa, review lama direset, marked_by ikut pengisi terakhir.
func (s *Service) mergeIntoExisting(existing m.AttendanceRecordModel, tc helperAuth.TeacherContext, req dto.MarkAttendanceRequest, decision MarkDecision) (m.AttendanceRecordModel, error) {
	if err := ValidateResubmit(existing.AttendanceRecordLocked, decision.Status); err != nil {
		return m.AttendanceRecordModel{}, err
	}

	existing.AttendanceRecordRecords = existing.AttendanceRecordRecords.Merge(req.ToEntries())
	existing.AttendanceRecordStatus = decision.Status
	existing.AttendanceRecordLocked = decision.Locked
	existing.AttendanceRecordMarkedBy = tc.TeacherID
	existing.AttendanceRecordReviewedBy = nil
	existing.AttendanceRecordReviewedAt = nil
	existing.AttendanceRecordReviewRemarks = nil

	err := s.DB.Model(&m.AttendanceRecordModel{}).
		Where("attendance_record_id = ?", existing.AttendanceRecordID).
		Updates(map[string]interface{}{
			"attendance_record_records":        existing.AttendanceRecordRecords,
			"attendance_record_status":         existing.AttendanceRecordStatus,
			"attendance_record_locked":         existing.AttendanceRecordLocked,
			"attendance_record_marked_by":      existing.AttendanceRecordMarkedBy,
			"attendance_record_reviewed_by":    nil,
			"attendance_record_reviewed_at":    nil,
			"attendance_record_review_remarks": nil,
		}).Error
	if err != nil {
		return m.AttendanceRecordModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui absensi")
	}
	return existing, nil
}

func (s *Service) findSlot(schoolID, classID, sectionID uuid.UUID, subjectID *uuid.UUID, academicYear string, date time.Time) (m.AttendanceRecordModel, error) {
	q := s.DB.
		Where(`attendance_record_school_id = ?
			AND attendance_record_class_id = ?
			AND attendance_record_section_id = ?
			AND attendance_record_academic_year = ?
			AND attendance_record_date = ?`,
			schoolID, classID, sectionID, academicYear, date.Format("2006-01-02"))
	if subjectID == nil {
		q = q.Where("attendance_record_subject_id IS NULL")
	} else {
		q = q.Where("attendance_record_subject_id = ?", *subjectID)
	}

	var row m.AttendanceRecordModel
	err := q.Take(&row).Error
	return row, err
}

/* =========================================================
 * REVIEW (koordinator)
 * ========================================================= */

func (s *Service) ReviewAttendance(tc helperAuth.TeacherContext, attendanceID uuid.UUID, req dto.ReviewAttendanceRequest) (m.AttendanceRecordModel, error) {
	var row m.AttendanceRecordModel
	err := s.DB.
		Where("attendance_record_id = ? AND attendance_record_school_id = ?", attendanceID, tc.SchoolID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.AttendanceRecordModel{}, fiber.NewError(fiber.StatusNotFound, "Absensi tidak ditemukan")
	}
	if err != nil {
		return m.AttendanceRecordModel{}, err
	}

	isCoord, err := s.Registry.IsActiveCoordinator(tc.TeacherID, row.AttendanceRecordSectionID)
	if err != nil {
		return m.AttendanceRecordModel{}, err
	}
	if err := ValidateReview(row.AttendanceRecordStatus, row.AttendanceRecordLocked,
		row.AttendanceRecordMarkedBy, tc.TeacherID, isCoord); err != nil {
		return m.AttendanceRecordModel{}, err
	}

	now := time.Now().In(helper.AppZone())
	if req.Action == "APPROVE" {
		row.AttendanceRecordStatus = m.StatusApproved
		row.AttendanceRecordLocked = true
	} else {
		row.AttendanceRecordStatus = m.StatusRejected
		row.AttendanceRecordLocked = false
	}
	row.AttendanceRecordReviewedBy = &tc.TeacherID
	row.AttendanceRecordReviewedAt = &now
	row.AttendanceRecordReviewRemarks = req.Remarks

	err = s.DB.Model(&m.AttendanceRecordModel{}).
		Where("attendance_record_id = ?", row.AttendanceRecordID).
		Updates(map[string]interface{}{
			"attendance_record_status":         row.AttendanceRecordStatus,
			"attendance_record_locked":         row.AttendanceRecordLocked,
			"attendance_record_reviewed_by":    row.AttendanceRecordReviewedBy,
			"attendance_record_reviewed_at":    row.AttendanceRecordReviewedAt,
			"attendance_record_review_remarks": row.AttendanceRecordReviewRemarks,
		}).Error
	if err != nil {
		return m.AttendanceRecordModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan review")
	}
	return row, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
