package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/features/school/attendance/dto"
	policyModel "sekolahku_backend/internals/features/school/attendance_policy/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

/* ===================== FAKES ===================== */

type fakeHolidays struct{ dates map[string]bool }

func (f fakeHolidays) IsHoliday(_ uuid.UUID, date time.Time) (bool, error) {
	return f.dates[date.Format("2006-01-02")], nil
}

type fakeRegistry struct {
	coordinator bool
	assigned    bool
}

func (f fakeRegistry) IsActiveCoordinator(_, _ uuid.UUID) (bool, error) { return f.coordinator, nil }
func (f fakeRegistry) HasValidAssignment(_, _, _, _ uuid.UUID, _ time.Time) (bool, error) {
	return f.assigned, nil
}

type fakeStudents struct{ rows []studentModel.StudentModel }

func (f fakeStudents) FindStudents(_ []uuid.UUID) ([]studentModel.StudentModel, error) {
	return f.rows, nil
}

/* ===================== FIXTURE ===================== */

var (
	schoolID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	classID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	sectionID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	subjectID = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	teacherID = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	studentID = uuid.MustParse("66666666-6666-6666-6666-666666666666")
)

func fixedToday() time.Time {
	return time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
}

func activeStudent() studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentID:        studentID,
		StudentSchoolID:  schoolID,
		StudentClassID:   classID,
		StudentSectionID: sectionID,
		StudentStatus:    "active",
	}
}

func markReq(date string, subject *uuid.UUID) dto.MarkAttendanceRequest {
	return dto.MarkAttendanceRequest{
		ClassID:   classID,
		SectionID: sectionID,
		SubjectID: subject,
		Date:      date,
		Records:   []dto.MarkRecordItem{{StudentID: studentID, Status: "present"}},
	}
}

func policyOf(mode policyModel.AttendanceMode, pastDays int) policyModel.AttendancePolicyModel {
	return policyModel.AttendancePolicyModel{
		AttendancePolicySchoolID:             schoolID,
		AttendancePolicyMode:                 mode,
		AttendancePolicyPastDaysAllowed:      pastDays,
		AttendancePolicyCorrectionWindowDays: 3,
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

/* ===================== TESTS ===================== */

func TestValidateMarking_GlobalGuards(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.MarkAttendanceRequest
		holidays fakeHolidays
		students fakeStudents
		wantCode int
	}{
		{
			name:     "tanggal salah format",
			req:      markReq("15-09-2025", nil),
			students: fakeStudents{rows: []studentModel.StudentModel{activeStudent()}},
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "tanggal masa depan ditolak",
			req:      markReq("2025-09-16", nil),
			students: fakeStudents{rows: []studentModel.StudentModel{activeStudent()}},
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "hari libur ditolak",
			req:      markReq("2025-09-15", nil),
			holidays: fakeHolidays{dates: map[string]bool{"2025-09-15": true}},
			students: fakeStudents{rows: []studentModel.StudentModel{activeStudent()}},
			wantCode: fiber.StatusBadRequest,
		},
		{
			name:     "siswa tidak ditemukan",
			req:      markReq("2025-09-15", nil),
			students: fakeStudents{},
			wantCode: fiber.StatusBadRequest,
		},
		{
			name: "siswa sekolah lain",
			req:  markReq("2025-09-15", nil),
			students: fakeStudents{rows: []studentModel.StudentModel{func() studentModel.StudentModel {
				s := activeStudent()
				s.StudentSchoolID = uuid.New()
				return s
			}()}},
			wantCode: fiber.StatusForbidden,
		},
		{
			name: "siswa nonaktif",
			req:  markReq("2025-09-15", nil),
			students: fakeStudents{rows: []studentModel.StudentModel{func() studentModel.StudentModel {
				s := activeStudent()
				s.StudentStatus = "inactive"
				return s
			}()}},
			wantCode: fiber.StatusBadRequest,
		},
		{
			name: "siswa section lain",
			req:  markReq("2025-09-15", nil),
			students: fakeStudents{rows: []studentModel.StudentModel{func() studentModel.StudentModel {
				s := activeStudent()
				s.StudentSectionID = uuid.New()
				return s
			}()}},
			wantCode: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateMarking(tt.req, policyOf(policyModel.ModeCoordinatorOnly, 0),
				schoolID, teacherID, fixedToday(),
				tt.holidays, fakeRegistry{coordinator: true}, tt.students)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, fiberCode(t, err))
		})
	}
}

func TestValidateMarking_CoordinatorOnly(t *testing.T) {
	students := fakeStudents{rows: []studentModel.StudentModel{activeStudent()}}
	holidays := fakeHolidays{}

	t.Run("bukan koordinator ditolak 403", func(t *testing.T) {
		_, err := ValidateMarking(markReq("2025-09-15", nil), policyOf(policyModel.ModeCoordinatorOnly, 0),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{coordinator: false}, students)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	})

	t.Run("subject harus kosong", func(t *testing.T) {
		_, err := ValidateMarking(markReq("2025-09-15", &subjectID), policyOf(policyModel.ModeCoordinatorOnly, 0),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{coordinator: true}, students)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("hari ini langsung APPROVED dan terkunci", func(t *testing.T) {
		d, err := ValidateMarking(markReq("2025-09-15", nil), policyOf(policyModel.ModeCoordinatorOnly, 0),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{coordinator: true}, students)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", d.Status)
		assert.True(t, d.Locked)
		assert.Nil(t, d.SubjectID)
	})

	t.Run("mundur dalam window diizinkan", func(t *testing.T) {
		d, err := ValidateMarking(markReq("2025-09-13", nil), policyOf(policyModel.ModeCoordinatorOnly, 2),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{coordinator: true}, students)
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", d.Status)
	})

	t.Run("mundur lewat window ditolak", func(t *testing.T) {
		_, err := ValidateMarking(markReq("2025-09-12", nil), policyOf(policyModel.ModeCoordinatorOnly, 2),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{coordinator: true}, students)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("window nol berarti hanya hari ini", func(t *testing.T) {
		_, err := ValidateMarking(markReq("2025-09-14", nil), policyOf(policyModel.ModeCoordinatorOnly, 0),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{coordinator: true}, students)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})
}

func TestValidateMarking_SubjectTeacher(t *testing.T) {
	students := fakeStudents{rows: []studentModel.StudentModel{activeStudent()}}
	holidays := fakeHolidays{}

	t.Run("subject wajib", func(t *testing.T) {
		_, err := ValidateMarking(markReq("2025-09-15", nil), policyOf(policyModel.ModeSubjectTeacher, 0),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{assigned: true}, students)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("tanpa penugasan valid ditolak 403", func(t *testing.T) {
		_, err := ValidateMarking(markReq("2025-09-15", &subjectID), policyOf(policyModel.ModeSubjectTeacher, 0),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{assigned: false}, students)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
	})

	t.Run("kemarin ditolak walau ada penugasan", func(t *testing.T) {
		_, err := ValidateMarking(markReq("2025-09-14", &subjectID), policyOf(policyModel.ModeSubjectTeacher, 5),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{assigned: true}, students)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("hari ini menjadi SUBMITTED tidak terkunci", func(t *testing.T) {
		d, err := ValidateMarking(markReq("2025-09-15", &subjectID), policyOf(policyModel.ModeSubjectTeacher, 0),
			schoolID, teacherID, fixedToday(), holidays, fakeRegistry{assigned: true}, students)
		require.NoError(t, err)
		assert.Equal(t, "SUBMITTED", d.Status)
		assert.False(t, d.Locked)
		require.NotNil(t, d.SubjectID)
		assert.Equal(t, subjectID, *d.SubjectID)
	})
}

func TestValidateMarking_UnknownMode(t *testing.T) {
	students := fakeStudents{rows: []studentModel.StudentModel{activeStudent()}}
	_, err := ValidateMarking(markReq("2025-09-15", nil), policyOf(policyModel.AttendanceMode("HYBRID"), 0),
		schoolID, teacherID, fixedToday(), fakeHolidays{}, fakeRegistry{coordinator: true}, students)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, fiberCode(t, err))
}

func TestValidateResubmit(t *testing.T) {
	t.Run("terkunci + SUBMITTED ditolak 409", func(t *testing.T) {
		err := ValidateResubmit(true, "SUBMITTED")
		require.Error(t, err)
		assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
	})

	t.Run("terkunci + keputusan koordinator boleh", func(t *testing.T) {
		assert.NoError(t, ValidateResubmit(true, "APPROVED"))
	})

	t.Run("belum terkunci selalu boleh", func(t *testing.T) {
		assert.NoError(t, ValidateResubmit(false, "SUBMITTED"))
		assert.NoError(t, ValidateResubmit(false, "APPROVED"))
	})
}

func TestValidateReview(t *testing.T) {
	marker := uuid.New()
	reviewer := uuid.New()

	tests := []struct {
		name        string
		status      string
		locked      bool
		reviewer    uuid.UUID
		coordinator bool
		wantCode    int
	}{
		{"sah dari SUBMITTED", "SUBMITTED", false, reviewer, true, 0},
		{"sudah final ditolak", "APPROVED", true, reviewer, true, fiber.StatusBadRequest},
		{"REJECTED tidak bisa di-review", "REJECTED", false, reviewer, true, fiber.StatusBadRequest},
		{"bukan koordinator", "SUBMITTED", false, reviewer, false, fiber.StatusForbidden},
		{"self-approval ditolak", "SUBMITTED", false, marker, true, fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReview(tt.status, tt.locked, marker, tt.reviewer, tt.coordinator)
			if tt.wantCode == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, fiberCode(t, err))
		})
	}
}
