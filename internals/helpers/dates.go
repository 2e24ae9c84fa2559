package helper

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/configs"
)

const DateLayout = "2006-01-02"

// ParseDate menerima "YYYY-MM-DD" ketat; hasilnya midnight di zona aplikasi.
func ParseDate(s string) (time.Time, error) {
	loc := configs.TimeZone
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil || t.Format(DateLayout) != s {
		// parser stdlib menerima "2025-9-5"; round-trip menolak yang tidak
		// berpad nol
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date format")
	}
	return t, nil
}

// AppZone: zona waktu aplikasi (fallback UTC kalau konfigurasi belum dimuat).
func AppZone() *time.Location {
	if configs.TimeZone != nil {
		return configs.TimeZone
	}
	return time.UTC
}

// Today: tanggal hari ini (tanpa jam) di zona aplikasi. Satu sumber untuk
// validator, review, dan koreksi.
func Today() time.Time {
	loc := configs.TimeZone
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

// DateOnly menormalkan time.Time ke midnight zona aplikasi, untuk hitung
// selisih hari kalender.
func DateOnly(t time.Time) time.Time {
	loc := configs.TimeZone
	if loc == nil {
		loc = time.UTC
	}
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween = b - a dalam hari kalender (bisa negatif).
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
