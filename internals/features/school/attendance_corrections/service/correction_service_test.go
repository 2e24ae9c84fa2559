package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	m "sekolahku_backend/internals/features/school/attendance_corrections/model"
)

var studentID = uuid.MustParse("66666666-6666-6666-6666-666666666666")

func approvedAttendance(date time.Time) attendanceModel.AttendanceRecordModel {
	return attendanceModel.AttendanceRecordModel{
		AttendanceRecordID:     uuid.New(),
		AttendanceRecordDate:   date,
		AttendanceRecordStatus: attendanceModel.StatusApproved,
		AttendanceRecordLocked: true,
		AttendanceRecordRecords: attendanceModel.StudentEntries{
			{StudentID: studentID, Status: attendanceModel.EntryAbsent},
		},
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func TestValidateRaise(t *testing.T) {
	today := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("sah dalam window", func(t *testing.T) {
		old, err := ValidateRaise(approvedAttendance(today.AddDate(0, 0, -2)), studentID,
			attendanceModel.EntryPresent, today, 3, false)
		require.NoError(t, err)
		assert.Equal(t, attendanceModel.EntryAbsent, old)
	})

	t.Run("lewat window ditolak", func(t *testing.T) {
		_, err := ValidateRaise(approvedAttendance(today.AddDate(0, 0, -4)), studentID,
			attendanceModel.EntryPresent, today, 3, false)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("absensi belum final ditolak", func(t *testing.T) {
		att := approvedAttendance(today)
		att.AttendanceRecordStatus = attendanceModel.StatusSubmitted
		att.AttendanceRecordLocked = false
		_, err := ValidateRaise(att, studentID, attendanceModel.EntryPresent, today, 3, false)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("siswa tidak ada di absensi", func(t *testing.T) {
		_, err := ValidateRaise(approvedAttendance(today), uuid.New(),
			attendanceModel.EntryPresent, today, 3, false)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	})

	t.Run("status sama ditolak", func(t *testing.T) {
		_, err := ValidateRaise(approvedAttendance(today), studentID,
			attendanceModel.EntryAbsent, today, 3, false)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("masih ada pengajuan menggantung", func(t *testing.T) {
		_, err := ValidateRaise(approvedAttendance(today), studentID,
			attendanceModel.EntryPresent, today, 3, true)
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})
}

func TestDecideInitialStage(t *testing.T) {
	t.Run("koordinator langsung COORDINATOR_APPROVED", func(t *testing.T) {
		status, remark := DecideInitialStage(true)
		assert.Equal(t, m.CorrectionCoordinatorApproved, status)
		require.NotNil(t, remark)
		assert.Equal(t, "Auto-approved (Raised by Coordinator)", *remark)
	})

	t.Run("guru biasa mulai REQUESTED", func(t *testing.T) {
		status, remark := DecideInitialStage(false)
		assert.Equal(t, m.CorrectionRequested, status)
		assert.Nil(t, remark)
	})
}

func TestValidateCoordinatorReview(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		coordinator bool
		wantCode    int
	}{
		{"sah dari REQUESTED", m.CorrectionRequested, true, 0},
		{"bukan koordinator", m.CorrectionRequested, false, fiber.StatusForbidden},
		{"sudah COORDINATOR_APPROVED", m.CorrectionCoordinatorApproved, true, fiber.StatusBadRequest},
		{"sudah REJECTED", m.CorrectionRejected, true, fiber.StatusBadRequest},
		{"sudah ADMIN_APPROVED", m.CorrectionAdminApproved, true, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinatorReview(tt.status, tt.coordinator)
			if tt.wantCode == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, fiberCode(t, err))
		})
	}
}

func TestValidateAdminReview(t *testing.T) {
	assert.NoError(t, ValidateAdminReview(m.CorrectionCoordinatorApproved))

	for _, status := range []string{
		m.CorrectionRequested,
		m.CorrectionApplying,
		m.CorrectionRejected,
		m.CorrectionAdminApproved,
	} {
		err := ValidateAdminReview(status)
		require.Error(t, err, status)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	}
}

func TestOpenStatuses(t *testing.T) {
	open := m.OpenStatuses()
	assert.ElementsMatch(t, []string{
		m.CorrectionRequested, m.CorrectionCoordinatorApproved, m.CorrectionApplying,
	}, open)
	assert.NotContains(t, open, m.CorrectionRejected)
	assert.NotContains(t, open, m.CorrectionAdminApproved)
}
