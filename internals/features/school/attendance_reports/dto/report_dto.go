package dto

import "github.com/google/uuid"

/* =========================================================
 * RINGKASAN HARIAN
 * ========================================================= */

type DailySummaryResponse struct {
	Date         string           `json:"date"`
	ClassID      *uuid.UUID       `json:"class_id,omitempty"`
	SectionID    *uuid.UUID       `json:"section_id,omitempty"`
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"by_status"`
	PresentCount int64            `json:"present_count"`
	Percentage   float64          `json:"percentage"`
}

/* =========================================================
 * REKAP PER SISWA
 * ========================================================= */

type StudentSummaryResponse struct {
	StudentID    uuid.UUID        `json:"student_id"`
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"by_status"`
	PresentCount int64            `json:"present_count"`
	Percentage   float64          `json:"percentage"`
}

type StudentMonthlyResponse struct {
	Month string `json:"month"`
	StudentSummaryResponse
}

type StudentRangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	StudentSummaryResponse
}

type StudentHistoryItem struct {
	Date      string     `json:"date"`
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
	Status    string     `json:"status"`
	Corrected bool       `json:"corrected"`
}

/* =========================================================
 * REKAP SECTION
 * ========================================================= */

type SectionMonthlyResponse struct {
	Month     string                   `json:"month"`
	SectionID uuid.UUID                `json:"section_id"`
	Students  []StudentSummaryResponse `json:"students"`
}

type DefaulterItem struct {
	StudentID    uuid.UUID `json:"student_id"`
	Total        int64     `json:"total"`
	PresentCount int64     `json:"present_count"`
	Percentage   float64   `json:"percentage"`
}

type TrendPoint struct {
	Month        string  `json:"month"`
	Total        int64   `json:"total"`
	PresentCount int64   `json:"present_count"`
	Percentage   float64 `json:"percentage"`
}
