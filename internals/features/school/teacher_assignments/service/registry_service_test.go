package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/school/teacher_assignments/model"
)

func datePtr(y int, mo time.Month, d int) *time.Time {
	t := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestValidateSubstituteWindow(t *testing.T) {
	tests := []struct {
		name    string
		role    m.AssignmentRole
		from    *time.Time
		to      *time.Time
		wantErr bool
	}{
		{"substitute dengan window valid", m.RoleSubstitute, datePtr(2025, 9, 1), datePtr(2025, 9, 10), false},
		{"substitute window satu hari", m.RoleSubstitute, datePtr(2025, 9, 1), datePtr(2025, 9, 1), false},
		{"substitute tanpa window", m.RoleSubstitute, nil, nil, true},
		{"substitute hanya from", m.RoleSubstitute, datePtr(2025, 9, 1), nil, true},
		{"substitute window terbalik", m.RoleSubstitute, datePtr(2025, 9, 10), datePtr(2025, 9, 1), true},
		{"primary tanpa window", m.RolePrimary, nil, nil, false},
		{"primary bawa window ditolak", m.RolePrimary, datePtr(2025, 9, 1), datePtr(2025, 9, 10), true},
		{"co_teacher bawa window ditolak", m.RoleCoTeacher, nil, datePtr(2025, 9, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubstituteWindow(tt.role, tt.from, tt.to)
			if tt.wantErr {
				require.Error(t, err)
				fe, ok := err.(*fiber.Error)
				require.True(t, ok)
				assert.Equal(t, fiber.StatusBadRequest, fe.Code)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDecideAssignRole(t *testing.T) {
	tests := []struct {
		name          string
		role          m.AssignmentRole
		primaryExists bool
		duplicate     m.AssignmentRole
		wantErr       bool
	}{
		{"primary pertama boleh", m.RolePrimary, false, "", false},
		{"primary kedua ditolak", m.RolePrimary, true, "", true},
		{"co_teacher butuh primary", m.RoleCoTeacher, false, "", true},
		{"co_teacher dengan primary boleh", m.RoleCoTeacher, true, "", false},
		{"substitute butuh primary", m.RoleSubstitute, false, "", true},
		{"substitute dengan primary boleh", m.RoleSubstitute, true, "", false},
		{"role ganda per guru ditolak", m.RoleCoTeacher, true, m.RolePrimary, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DecideAssignRole(tt.role, tt.primaryExists, tt.duplicate)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
