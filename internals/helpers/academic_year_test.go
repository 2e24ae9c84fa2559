package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcademicYearFor(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"pertengahan tahun ajaran", time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"april adalah awal tahun ajaran", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"maret masih tahun ajaran lama", time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), "2024-25"},
		{"januari masuk tahun ajaran lama", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"pergantian abad dua digit", time.Date(2099, 6, 1, 0, 0, 0, 0, time.UTC), "2099-00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AcademicYearFor(tt.date))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, DaysBetween(a, b))
	assert.Equal(t, -5, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))

	// jam tidak memengaruhi hitungan hari kalender
	late := time.Date(2025, 9, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 5, DaysBetween(a, late))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-09-15")
	assert.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.September, got.Month())
	assert.Equal(t, 15, got.Day())

	for _, bad := range []string{"15-09-2025", "2025/09/15", "2025-9-5", "", "bukan tanggal"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
