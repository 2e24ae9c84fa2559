package helper

import (
	"fmt"
	"time"
)

// CurrentAcademicYear menentukan tahun ajaran dari tanggal berjalan.
// Tahun ajaran mulai April: Mei 2025 → "2025-26", Maret 2025 → "2024-25".
func CurrentAcademicYear(now time.Time) string {
	return AcademicYearFor(now)
}

func AcademicYearFor(t time.Time) string {
	year := t.Year()
	startYear := year
	if t.Month() < time.April {
		startYear = year - 1
	}
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}
