package service

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance_reports/dto"
)

// Semua laporan hanya membaca baris final: APPROVED dan terkunci.
// present + late dihitung hadir.
const baseScope = `attendance_record_school_id = ?
	AND attendance_record_status = 'APPROVED'
	AND attendance_record_locked = true`

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// Percentage: dibulatkan 2 desimal; penyebut nol = 0.0, bukan error.
func Percentage(present, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(float64(present)/float64(total)*10000) / 100
}

type statusCountRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type studentCountRow struct {
	StudentID string `gorm:"column:student_id"`
	Total     int64  `gorm:"column:total"`
	Present   int64  `gorm:"column:present"`
}

/* =========================================================
 * RINGKASAN HARIAN
 * ========================================================= */

func (s *Service) DailySummary(schoolID uuid.UUID, date time.Time, classID, sectionID *uuid.UUID) (dto.DailySummaryResponse, error) {
	q := `
		SELECT elem->>'status' AS status, COUNT(*) AS count
		FROM attendance_records,
			jsonb_array_elements(attendance_record_records) elem
		WHERE ` + baseScope + `
			AND attendance_record_date = ?`
	args := []interface{}{schoolID, date.Format("2006-01-02")}
	if classID != nil {
		q += " AND attendance_record_class_id = ?"
		args = append(args, *classID)
	}
	if sectionID != nil {
		q += " AND attendance_record_section_id = ?"
		args = append(args, *sectionID)
	}
	q += " GROUP BY 1"

	var rows []statusCountRow
	if err := s.DB.Raw(q, args...).Scan(&rows).Error; err != nil {
		return dto.DailySummaryResponse{}, err
	}

	out := dto.DailySummaryResponse{
		Date:      date.Format("2006-01-02"),
		ClassID:   classID,
		SectionID: sectionID,
		ByStatus:  map[string]int64{},
	}
	for _, r := range rows {
		out.ByStatus[r.Status] = r.Count
		out.Total += r.Count
		if r.Status == "present" || r.Status == "late" {
			out.PresentCount += r.Count
		}
	}
	out.Percentage = Percentage(out.PresentCount, out.Total)
	return out, nil
}

/* =========================================================
 * REKAP SISWA
 * ========================================================= */

func (s *Service) StudentMonthly(schoolID, studentID uuid.UUID, month string) (dto.StudentMonthlyResponse, error) {
	sum, err := s.studentSummary(schoolID, studentID,
		"to_char(attendance_record_date, 'YYYY-MM') = ?", month)
	if err != nil {
		return dto.StudentMonthlyResponse{}, err
	}
	return dto.StudentMonthlyResponse{Month: month, StudentSummaryResponse: sum}, nil
}

func (s *Service) StudentRange(schoolID, studentID uuid.UUID, from, to time.Time) (dto.StudentRangeResponse, error) {
	sum, err := s.studentSummary(schoolID, studentID,
		"attendance_record_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return dto.StudentRangeResponse{}, err
	}
	return dto.StudentRangeResponse{
		From:                   from.Format("2006-01-02"),
		To:                     to.Format("2006-01-02"),
		StudentSummaryResponse: sum,
	}, nil
}

func (s *Service) studentSummary(schoolID, studentID uuid.UUID, dateCond string, dateArgs ...interface{}) (dto.StudentSummaryResponse, error) {
	q := `
		SELECT elem->>'status' AS status, COUNT(*) AS count
		FROM attendance_records,
			jsonb_array_elements(attendance_record_records) elem
		WHERE ` + baseScope + `
			AND ` + dateCond + `
			AND elem->>'student_id' = ?
		GROUP BY 1`
	args := append([]interface{}{schoolID}, dateArgs...)
	args = append(args, studentID.String())

	var rows []statusCountRow
	if err := s.DB.Raw(q, args...).Scan(&rows).Error; err != nil {
		return dto.StudentSummaryResponse{}, err
	}

	out := dto.StudentSummaryResponse{StudentID: studentID, ByStatus: map[string]int64{}}
	for _, r := range rows {
		out.ByStatus[r.Status] = r.Count
		out.Total += r.Count
		if r.Status == "present" || r.Status == "late" {
			out.PresentCount += r.Count
		}
	}
	out.Percentage = Percentage(out.PresentCount, out.Total)
	return out, nil
}

// StudentHistory: baris mentah per hari, terbaru dulu.
func (s *Service) StudentHistory(schoolID, studentID uuid.UUID, limit int) ([]dto.StudentHistoryItem, error) {
	type historyRow struct {
		Date      time.Time `gorm:"column:date"`
		SubjectID *string   `gorm:"column:subject_id"`
		Status    string    `gorm:"column:status"`
		Corrected bool      `gorm:"column:corrected"`
	}

	var rows []historyRow
	err := s.DB.Raw(`
		SELECT attendance_record_date AS date,
			attendance_record_subject_id::text AS subject_id,
			elem->>'status' AS status,
			COALESCE((elem->>'corrected')::bool, false) AS corrected
		FROM attendance_records,
			jsonb_array_elements(attendance_record_records) elem
		WHERE `+baseScope+`
			AND elem->>'student_id' = ?
		ORDER BY attendance_record_date DESC
		LIMIT ?`,
		schoolID, studentID.String(), limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.StudentHistoryItem, 0, len(rows))
	for _, r := range rows {
		item := dto.StudentHistoryItem{
			Date:      r.Date.Format("2006-01-02"),
			Status:    r.Status,
			Corrected: r.Corrected,
		}
		if r.SubjectID != nil {
			if id, err := uuid.Parse(*r.SubjectID); err == nil {
				item.SubjectID = &id
			}
		}
		out = append(out, item)
	}
	return out, nil
}

/* =========================================================
 * REKAP SECTION
 * ========================================================= */

func (s *Service) SectionMonthly(schoolID, sectionID uuid.UUID, month string) (dto.SectionMonthlyResponse, error) {
	rows, err := s.sectionStudentCounts(schoolID, sectionID, month)
	if err != nil {
		return dto.SectionMonthlyResponse{}, err
	}

	out := dto.SectionMonthlyResponse{
		Month:     month,
		SectionID: sectionID,
		Students:  make([]dto.StudentSummaryResponse, 0, len(rows)),
	}
	for _, r := range rows {
		id, err := uuid.Parse(r.StudentID)
		if err != nil {
			continue
		}
		out.Students = append(out.Students, dto.StudentSummaryResponse{
			StudentID:    id,
			Total:        r.Total,
			PresentCount: r.Present,
			Percentage:   Percentage(r.Present, r.Total),
		})
	}
	return out, nil
}

// Defaulters: siswa dengan persentase di bawah ambang.
func (s *Service) Defaulters(schoolID, sectionID uuid.UUID, month string, threshold float64) ([]dto.DefaulterItem, error) {
	rows, err := s.sectionStudentCounts(schoolID, sectionID, month)
	if err != nil {
		return nil, err
	}

	out := make([]dto.DefaulterItem, 0)
	for _, r := range rows {
		pct := Percentage(r.Present, r.Total)
		if pct >= threshold {
			continue
		}
		id, err := uuid.Parse(r.StudentID)
		if err != nil {
			continue
		}
		out = append(out, dto.DefaulterItem{
			StudentID:    id,
			Total:        r.Total,
			PresentCount: r.Present,
			Percentage:   pct,
		})
	}
	return out, nil
}

func (s *Service) sectionStudentCounts(schoolID, sectionID uuid.UUID, month string) ([]studentCountRow, error) {
	var rows []studentCountRow
	err := s.DB.Raw(`
		SELECT elem->>'student_id' AS student_id,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE elem->>'status' IN ('present', 'late')) AS present
		FROM attendance_records,
			jsonb_array_elements(attendance_record_records) elem
		WHERE `+baseScope+`
			AND attendance_record_section_id = ?
			AND to_char(attendance_record_date, 'YYYY-MM') = ?
		GROUP BY 1
		ORDER BY 1`,
		schoolID, sectionID, month).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Trend: rata-rata kehadiran section per bulan dalam satu tahun ajaran.
func (s *Service) Trend(schoolID, sectionID uuid.UUID, academicYear string) ([]dto.TrendPoint, error) {
	type trendRow struct {
		Month   string `gorm:"column:month"`
		Total   int64  `gorm:"column:total"`
		Present int64  `gorm:"column:present"`
	}

	var rows []trendRow
	err := s.DB.Raw(`
		SELECT to_char(attendance_record_date, 'YYYY-MM') AS month,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE elem->>'status' IN ('present', 'late')) AS present
		FROM attendance_records,
			jsonb_array_elements(attendance_record_records) elem
		WHERE `+baseScope+`
			AND attendance_record_section_id = ?
			AND attendance_record_academic_year = ?
		GROUP BY 1
		ORDER BY 1`,
		schoolID, sectionID, academicYear).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.TrendPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TrendPoint{
			Month:        r.Month,
			Total:        r.Total,
			PresentCount: r.Present,
			Percentage:   Percentage(r.Present, r.Total),
		})
	}
	return out, nil
}
