package service

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/attendance/dto"
	policyModel "sekolahku_backend/internals/features/school/attendance_policy/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================================================
 * KOLABORATOR EKSTERNAL (interface sisi konsumen)
 * ========================================================= */

type HolidayLookup interface {
	IsHoliday(schoolID uuid.UUID, date time.Time) (bool, error)
}

type AssignmentRegistry interface {
	IsActiveCoordinator(teacherID, sectionID uuid.UUID) (bool, error)
	HasValidAssignment(teacherID, classID, sectionID, subjectID uuid.UUID, asOf time.Time) (bool, error)
}

type StudentLookup interface {
	FindStudents(ids []uuid.UUID) ([]studentModel.StudentModel, error)
}

/* =========================================================
 * HASIL VALIDASI
 * ========================================================= */

type MarkDecision struct {
	Status    string
	Locked    bool
	SubjectID *uuid.UUID
	Date      time.Time
}

// ValidateMarking menjalankan seluruh aturan marking, fail-fast sesuai
// urutan: tanggal → masa depan → libur → integritas siswa → aturan mode.
func ValidateMarking(
	req dto.MarkAttendanceRequest,
	policy policyModel.AttendancePolicyModel,
	schoolID, teacherID uuid.UUID,
	today time.Time,
	holidays HolidayLookup,
	registry AssignmentRegistry,
	students StudentLookup,
) (MarkDecision, error) {
	// --- 1. Prasyarat global ---

	attendanceDate, err := helper.ParseDate(req.Date)
	if err != nil {
		return MarkDecision{}, err
	}

	// 1.1 Tidak boleh tanggal depan, mode apa pun
	if attendanceDate.After(today) {
		return MarkDecision{}, fiber.NewError(fiber.StatusBadRequest,
			"Tidak bisa mengisi absensi untuk tanggal yang belum lewat")
	}

	// 1.2 Hari libur = hard block
	isHoliday, err := holidays.IsHoliday(schoolID, attendanceDate)
	if err != nil {
		return MarkDecision{}, err
	}
	if isHoliday {
		return MarkDecision{}, fiber.NewError(fiber.StatusBadRequest,
			"Tidak bisa mengisi absensi di hari libur: "+req.Date)
	}

	// 1.3 Integritas batch siswa — satu saja tidak valid, seluruh batch ditolak
	if err := validateStudentBatch(req, schoolID, students); err != nil {
		return MarkDecision{}, err
	}

	// --- 2. Aturan per mode (switch exhaustive; mode asing = 500) ---

	switch policy.AttendancePolicyMode {
	case policyModel.ModeCoordinatorOnly:
		ok, err := registry.IsActiveCoordinator(teacherID, req.SectionID)
		if err != nil {
			return MarkDecision{}, err
		}
		if !ok {
			return MarkDecision{}, fiber.NewError(fiber.StatusForbidden,
				"Mode COORDINATOR_ONLY: Anda bukan koordinator section ini.")
		}

		if req.SubjectID != nil {
			return MarkDecision{}, fiber.NewError(fiber.StatusBadRequest,
				"Mode COORDINATOR_ONLY: subject_id harus kosong.")
		}

		if attendanceDate.Before(today) {
			delta := helper.DaysBetween(attendanceDate, today)
			if delta > policy.AttendancePolicyPastDaysAllowed {
				return MarkDecision{}, fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Mode COORDINATOR_ONLY: absensi lebih tua dari %d hari tidak bisa diisi.",
						policy.AttendancePolicyPastDaysAllowed))
			}
		}

		// Koordinator = otoritas terminal → langsung final & terkunci
		return MarkDecision{
			Status:    "APPROVED",
			Locked:    true,
			SubjectID: nil,
			Date:      attendanceDate,
		}, nil

	case policyModel.ModeSubjectTeacher:
		if req.SubjectID == nil {
			return MarkDecision{}, fiber.NewError(fiber.StatusBadRequest,
				"Mode SUBJECT_TEACHER: subject_id wajib diisi.")
		}

		assigned, err := registry.HasValidAssignment(teacherID, req.ClassID, req.SectionID, *req.SubjectID, attendanceDate)
		if err != nil {
			return MarkDecision{}, err
		}
		if !assigned {
			return MarkDecision{}, fiber.NewError(fiber.StatusForbidden,
				"Mode SUBJECT_TEACHER: Anda tidak punya penugasan valid untuk class/subject/tanggal ini.")
		}

		// Ketat: hanya hari ini
		if !attendanceDate.Equal(today) {
			return MarkDecision{}, fiber.NewError(fiber.StatusBadRequest,
				"Mode SUBJECT_TEACHER: absensi hanya bisa diisi untuk HARI INI.")
		}

		return MarkDecision{
			Status:    "SUBMITTED",
			Locked:    false,
			SubjectID: req.SubjectID,
			Date:      attendanceDate,
		}, nil
	}

	// Misconfiguration, bukan kesalahan caller
	return MarkDecision{}, fiber.NewError(fiber.StatusInternalServerError, "Attendance policy mode tidak dikenal")
}

func validateStudentBatch(req dto.MarkAttendanceRequest, schoolID uuid.UUID, students StudentLookup) error {
	ids := make([]uuid.UUID, 0, len(req.Records))
	seen := make(map[uuid.UUID]struct{}, len(req.Records))
	for _, r := range req.Records {
		if _, dup := seen[r.StudentID]; dup {
			continue
		}
		seen[r.StudentID] = struct{}{}
		ids = append(ids, r.StudentID)
	}
	if len(ids) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Daftar records tidak boleh kosong")
	}

	rows, err := students.FindStudents(ids)
	if err != nil {
		return err
	}
	if len(rows) != len(ids) {
		found := make(map[uuid.UUID]struct{}, len(rows))
		for _, s := range rows {
			found[s.StudentID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return fiber.NewError(fiber.StatusBadRequest,
					"Ada student_id yang tidak ditemukan: "+id.String())
			}
		}
	}

	for _, s := range rows {
		if s.StudentSchoolID != schoolID {
			return fiber.NewError(fiber.StatusForbidden,
				"Siswa "+s.StudentID.String()+" terdaftar di sekolah lain.")
		}
		if s.StudentStatus != "active" {
			return fiber.NewError(fiber.StatusBadRequest,
				"Siswa "+s.StudentID.String()+" tidak aktif.")
		}
		if s.StudentClassID != req.ClassID || s.StudentSectionID != req.SectionID {
			return fiber.NewError(fiber.StatusBadRequest,
				"Siswa "+s.StudentID.String()+" tidak terdaftar di class/section yang diminta.")
		}
	}
	return nil
}

/* =========================================================
 * GUARD REVIEW (murni, dipakai service + unit test)
 * ========================================================= */

// ValidateReview: transisi hanya sah dari SUBMITTED; reviewer harus
// koordinator aktif section; tidak boleh me-review submit sendiri.
func ValidateReview(status string, locked bool, markedBy, reviewerID uuid.UUID, isCoordinator bool) error {
	if locked && status == "APPROVED" {
		return fiber.NewError(fiber.StatusBadRequest, "Absensi sudah disetujui dan terkunci.")
	}
	if status != "SUBMITTED" {
		return fiber.NewError(fiber.StatusBadRequest, "Hanya absensi berstatus SUBMITTED yang bisa di-review.")
	}
	if !isCoordinator {
		return fiber.NewError(fiber.StatusForbidden, "Hanya koordinator section yang boleh me-review absensi ini.")
	}
	if markedBy == reviewerID {
		return fiber.NewError(fiber.StatusForbidden, "Tidak boleh menyetujui submit absensi sendiri.")
	}
	return nil
}
