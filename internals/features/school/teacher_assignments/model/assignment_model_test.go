package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestAuthorizesAttendance(t *testing.T) {
	from := day(10)
	to := day(20)

	tests := []struct {
		name string
		row  TeacherAssignmentModel
		asOf time.Time
		want bool
	}{
		{
			"primary aktif selalu boleh",
			TeacherAssignmentModel{TeacherAssignmentRoleType: RolePrimary, TeacherAssignmentStatus: "active"},
			day(15), true,
		},
		{
			"primary nonaktif tidak boleh",
			TeacherAssignmentModel{TeacherAssignmentRoleType: RolePrimary, TeacherAssignmentStatus: "inactive"},
			day(15), false,
		},
		{
			"co_teacher tidak pernah boleh",
			TeacherAssignmentModel{TeacherAssignmentRoleType: RoleCoTeacher, TeacherAssignmentStatus: "active"},
			day(15), false,
		},
		{
			"substitute di dalam window",
			TeacherAssignmentModel{TeacherAssignmentRoleType: RoleSubstitute, TeacherAssignmentStatus: "active",
				TeacherAssignmentSubstituteFrom: &from, TeacherAssignmentSubstituteTo: &to},
			day(15), true,
		},
		{
			"substitute tepat di batas window",
			TeacherAssignmentModel{TeacherAssignmentRoleType: RoleSubstitute, TeacherAssignmentStatus: "active",
				TeacherAssignmentSubstituteFrom: &from, TeacherAssignmentSubstituteTo: &to},
			day(20), true,
		},
		{
			"substitute di luar window",
			TeacherAssignmentModel{TeacherAssignmentRoleType: RoleSubstitute, TeacherAssignmentStatus: "active",
				TeacherAssignmentSubstituteFrom: &from, TeacherAssignmentSubstituteTo: &to},
			day(21), false,
		},
		{
			"substitute tanpa window",
			TeacherAssignmentModel{TeacherAssignmentRoleType: RoleSubstitute, TeacherAssignmentStatus: "active"},
			day(15), false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.row.AuthorizesAttendance(tt.asOf))
		})
	}
}

func TestAssignmentRoleValid(t *testing.T) {
	assert.True(t, RolePrimary.Valid())
	assert.True(t, RoleCoTeacher.Valid())
	assert.True(t, RoleSubstitute.Valid())
	assert.False(t, AssignmentRole("TEACHER").Valid())
	assert.False(t, AssignmentRole("").Valid())
}
