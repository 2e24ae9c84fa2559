package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	"sekolahku_backend/internals/features/school/attendance_corrections/dto"
	m "sekolahku_backend/internals/features/school/attendance_corrections/model"
	policyService "sekolahku_backend/internals/features/school/attendance_policy/service"
	auditModel "sekolahku_backend/internals/features/school/audit/model"
	auditService "sekolahku_backend/internals/features/school/audit/service"
	registryService "sekolahku_backend/internals/features/school/teacher_assignments/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

const autoApproveRemark = "Auto-approved (Raised by Coordinator)"

type Service struct {
	DB *gorm.DB

	Policies *policyService.Service
	Registry *registryService.Service
	Audit    *auditService.Service
}

func New(db *gorm.DB) *Service {
	return &Service{
		DB:       db,
		Policies: policyService.New(db),
		Registry: registryService.New(db),
		Audit:    auditService.New(db),
	}
}

/* =========================================================
 * GUARD MURNI (tanpa DB) — dipakai service + unit test
 * ========================================================= */

// ValidateRaise memeriksa kelayakan pengajuan terhadap baris absensi yang
// sudah dimuat. Urutan: window → final → entri ada → status beda → tidak
// ada pengajuan menggantung.
func ValidateRaise(att attendanceModel.AttendanceRecordModel, studentID uuid.UUID, requestedStatus string, today time.Time, windowDays int, hasOpen bool) (oldStatus string, err error) {
	gap := helper.DaysBetween(att.AttendanceRecordDate, today)
	if gap > windowDays {
		return "", fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Masa koreksi sudah lewat (maksimal %d hari).", windowDays))
	}

	if att.AttendanceRecordStatus != attendanceModel.StatusApproved || !att.AttendanceRecordLocked {
		return "", fiber.NewError(fiber.StatusBadRequest,
			"Koreksi hanya untuk absensi yang sudah final (APPROVED dan terkunci).")
	}

	entry := att.AttendanceRecordRecords.Find(studentID)
	if entry == nil {
		return "", fiber.NewError(fiber.StatusNotFound, "Siswa tidak ada di absensi ini")
	}

	if entry.Status == requestedStatus {
		return "", fiber.NewError(fiber.StatusBadRequest, "Status yang diminta sama dengan status sekarang.")
	}

	if hasOpen {
		return "", fiber.NewError(fiber.StatusBadRequest,
			"Masih ada pengajuan koreksi yang menggantung untuk siswa ini.")
	}
	return entry.Status, nil
}

// DecideInitialStage: koordinator section memulai langsung di tahap
// COORDINATOR_APPROVED dengan remark sintetis.
func DecideInitialStage(isCoordinator bool) (status string, remark *string) {
	if isCoordinator {
		r := autoApproveRemark
		return m.CorrectionCoordinatorApproved, &r
	}
	return m.CorrectionRequested, nil
}

func ValidateCoordinatorReview(status string, isCoordinator bool) error {
	if status != m.CorrectionRequested {
		return fiber.NewError(fiber.StatusBadRequest, "Hanya pengajuan berstatus REQUESTED yang bisa di-review koordinator.")
	}
	if !isCoordinator {
		return fiber.NewError(fiber.StatusForbidden, "Hanya koordinator section terkait yang boleh me-review pengajuan ini.")
	}
	return nil
}

func ValidateAdminReview(status string) error {
	if status != m.CorrectionCoordinatorApproved {
		return fiber.NewError(fiber.StatusBadRequest, "Hanya pengajuan berstatus COORDINATOR_APPROVED yang bisa diputus admin.")
	}
	return nil
}

/* =========================================================
 * RAISE
 * ========================================================= */

func (s *Service) RaiseRequest(tc helperAuth.TeacherContext, role string, req dto.RaiseCorrectionRequest) (m.AttendanceCorrectionModel, error) {
	var att attendanceModel.AttendanceRecordModel
	err := s.DB.
		Where("attendance_record_id = ? AND attendance_record_school_id = ?", req.AttendanceID, tc.SchoolID).
		Take(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.AttendanceCorrectionModel{}, fiber.NewError(fiber.StatusNotFound, "Absensi tidak ditemukan")
	}
	if err != nil {
		return m.AttendanceCorrectionModel{}, err
	}

	policy, err := s.Policies.GetPolicy(tc.SchoolID)
	if err != nil {
		return m.AttendanceCorrectionModel{}, err
	}

	var openCount int64
	err = s.DB.Model(&m.AttendanceCorrectionModel{}).
		Where(`attendance_correction_attendance_id = ?
			AND attendance_correction_student_id = ?
			AND attendance_correction_status IN ?`,
			req.AttendanceID, req.StudentID, m.OpenStatuses()).
		Count(&openCount).Error
	if err != nil {
		return m.AttendanceCorrectionModel{}, err
	}

	oldStatus, err := ValidateRaise(att, req.StudentID, req.RequestedStatus,
		helper.Today(), policy.AttendancePolicyCorrectionWindowDays, openCount > 0)
	if err != nil {
		return m.AttendanceCorrectionModel{}, err
	}

	isCoord, err := s.Registry.IsActiveCoordinator(tc.TeacherID, att.AttendanceRecordSectionID)
	if err != nil {
		return m.AttendanceCorrectionModel{}, err
	}
	stage, remark := DecideInitialStage(isCoord)

	row := m.AttendanceCorrectionModel{
		AttendanceCorrectionOrgID:           tc.OrgID,
		AttendanceCorrectionSchoolID:        tc.SchoolID,
		AttendanceCorrectionAttendanceID:    att.AttendanceRecordID,
		AttendanceCorrectionStudentID:       req.StudentID,
		AttendanceCorrectionClassID:         att.AttendanceRecordClassID,
		AttendanceCorrectionSectionID:       att.AttendanceRecordSectionID,
		AttendanceCorrectionDate:            att.AttendanceRecordDate,
		AttendanceCorrectionAcademicYear:    att.AttendanceRecordAcademicYear,
		AttendanceCorrectionOldStatus:       oldStatus,
		AttendanceCorrectionRequestedStatus: req.RequestedStatus,
		AttendanceCorrectionReason:          req.Reason,
		AttendanceCorrectionStatus:          stage,
		AttendanceCorrectionRequestedBy:     tc.UserID,
		AttendanceCorrectionRequestedRole:   role,
	}
	if stage == m.CorrectionCoordinatorApproved {
		now := time.Now().In(helper.AppZone())
		row.AttendanceCorrectionCoordinatorBy = &tc.TeacherID
		row.AttendanceCorrectionCoordinatorAt = &now
		row.AttendanceCorrectionCoordinatorRemarks = remark
	}

	if err := s.DB.Create(&row).Error; err != nil {
		return m.AttendanceCorrectionModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pengajuan koreksi")
	}
	return row, nil
}

/* =========================================================
 * REVIEW KOORDINATOR
 * ========================================================= */

func (s *Service) CoordinatorReview(tc helperAuth.TeacherContext, correctionID uuid.UUID, req dto.ReviewCorrectionRequest) (m.AttendanceCorrectionModel, error) {
	row, err := s.load(correctionID, tc.SchoolID)
	if err != nil {
		return m.AttendanceCorrectionModel{}, err
	}

	isCoord, err := s.Registry.IsActiveCoordinator(tc.TeacherID, row.AttendanceCorrectionSectionID)
	if err != nil {
		return m.AttendanceCorrectionModel{}, err
	}
	if err := ValidateCoordinatorReview(row.AttendanceCorrectionStatus, isCoord); err != nil {
		return m.AttendanceCorrectionModel{}, err
	}

	next := m.CorrectionCoordinatorApproved
	if req.Action == "REJECT" {
		next = m.CorrectionRejected
	}

	now := time.Now().In(helper.AppZone())
	err = s.DB.Model(&m.AttendanceCorrectionModel{}).
		Where("attendance_correction_id = ? AND attendance_correction_status = ?",
			row.AttendanceCorrectionID, m.CorrectionRequested).
		Updates(map[string]interface{}{
			"attendance_correction_status":              next,
			"attendance_correction_coordinator_by":      tc.TeacherID,
			"attendance_correction_coordinator_at":      now,
			"attendance_correction_coordinator_remarks": req.Remarks,
		}).Error
	if err != nil {
		return m.AttendanceCorrectionModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan review koordinator")
	}

	row.AttendanceCorrectionStatus = next
	row.AttendanceCorrectionCoordinatorBy = &tc.TeacherID
	row.AttendanceCorrectionCoordinatorAt = &now
	row.AttendanceCorrectionCoordinatorRemarks = req.Remarks
	return row, nil
}

/* =========================================================
 * PUTUSAN ADMIN (two-phase apply)
 * ========================================================= */

func (s *Service) AdminReview(ac helperAuth.AdminContext, correctionID uuid.UUID, req dto.ReviewCorrectionRequest) (m.AttendanceCorrectionModel, error) {
	row, err := s.load(correctionID, ac.SchoolID)
	if err != nil {
		return m.AttendanceCorrectionModel{}, err
	}
	if err := ValidateAdminReview(row.AttendanceCorrectionStatus); err != nil {
		return m.AttendanceCorrectionModel{}, err
	}

	now := time.Now().In(helper.AppZone())

	if req.Action == "REJECT" {
		err = s.DB.Model(&m.AttendanceCorrectionModel{}).
			Where("attendance_correction_id = ? AND attendance_correction_status = ?",
				row.AttendanceCorrectionID, m.CorrectionCoordinatorApproved).
			Updates(map[string]interface{}{
				"attendance_correction_status":        m.CorrectionRejected,
				"attendance_correction_admin_by":      ac.UserID,
				"attendance_correction_admin_at":      now,
				"attendance_correction_admin_remarks": req.Remarks,
			}).Error
		if err != nil {
			return m.AttendanceCorrectionModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan putusan admin")
		}
		row.AttendanceCorrectionStatus = m.CorrectionRejected
		row.AttendanceCorrectionAdminBy = &ac.UserID
		row.AttendanceCorrectionAdminAt = &now
		row.AttendanceCorrectionAdminRemarks = req.Remarks
		return row, nil
	}

	// APPROVE: tandai APPLYING → patch satu entri JSONB → ADMIN_APPROVED.
	// Ketiganya satu transaksi: patch gagal = seluruh putusan batal dan
	// status kembali COORDINATOR_APPROVED (rollback).
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&m.AttendanceCorrectionModel{}).
			Where("attendance_correction_id = ? AND attendance_correction_status = ?",
				row.AttendanceCorrectionID, m.CorrectionCoordinatorApproved).
			Update("attendance_correction_status", m.CorrectionApplying)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Pengajuan sedang diproses oleh putusan lain.")
		}

		patch := tx.Exec(`
			UPDATE attendance_records
			SET attendance_record_records = (
				SELECT jsonb_agg(
					CASE WHEN elem->>'student_id' = ?
					THEN elem || jsonb_build_object(
						'status', ?::text,
						'corrected', true,
						'correction_id', ?::text,
						'correction_reason', ?::text)
					ELSE elem END)
				FROM jsonb_array_elements(attendance_record_records) elem
			)
			WHERE attendance_record_id = ?
				AND EXISTS (
					SELECT 1 FROM jsonb_array_elements(attendance_record_records) e
					WHERE e->>'student_id' = ?
				)`,
			row.AttendanceCorrectionStudentID.String(),
			row.AttendanceCorrectionRequestedStatus,
			row.AttendanceCorrectionID.String(),
			row.AttendanceCorrectionReason,
			row.AttendanceCorrectionAttendanceID,
			row.AttendanceCorrectionStudentID.String(),
		)
		if patch.Error != nil {
			return patch.Error
		}
		if patch.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict,
				"Entri siswa tidak ditemukan di absensi — koreksi tidak bisa diterapkan.")
		}

		return tx.Model(&m.AttendanceCorrectionModel{}).
			Where("attendance_correction_id = ?", row.AttendanceCorrectionID).
			Updates(map[string]interface{}{
				"attendance_correction_status":        m.CorrectionAdminApproved,
				"attendance_correction_admin_by":      ac.UserID,
				"attendance_correction_admin_at":      now,
				"attendance_correction_admin_remarks": req.Remarks,
			}).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return m.AttendanceCorrectionModel{}, fe
		}
		return m.AttendanceCorrectionModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal menerapkan koreksi")
	}

	row.AttendanceCorrectionStatus = m.CorrectionAdminApproved
	row.AttendanceCorrectionAdminBy = &ac.UserID
	row.AttendanceCorrectionAdminAt = &now
	row.AttendanceCorrectionAdminRemarks = req.Remarks

	// Jejak audit setelah commit; kegagalan hanya dicatat.
	s.Audit.LogEvent(auditService.Event{
		OrgID:       ac.OrgID,
		SchoolID:    ac.SchoolID,
		Entity:      "attendance",
		EntityID:    row.AttendanceCorrectionAttendanceID,
		Action:      auditModel.ActionCorrectionApplied,
		OldValue:    fiber.Map{"student_id": row.AttendanceCorrectionStudentID, "status": row.AttendanceCorrectionOldStatus},
		NewValue:    fiber.Map{"student_id": row.AttendanceCorrectionStudentID, "status": row.AttendanceCorrectionRequestedStatus},
		PerformedBy: ac.UserID,
		Reason:      &row.AttendanceCorrectionReason,
	})

	return row, nil
}

/* =========================================================
 * ANTREAN & LISTING
 * ========================================================= */

// PendingRequests, scope per role: koordinator melihat REQUESTED di
// section-nya, admin melihat COORDINATOR_APPROVED, guru melihat pengajuan
// miliknya sendiri (semua status).
func (s *Service) PendingRequests(schoolID uuid.UUID, role string, tc helperAuth.TeacherContext) ([]m.AttendanceCorrectionModel, error) {
	q := s.DB.
		Where("attendance_correction_school_id = ?", schoolID).
		Order("attendance_correction_created_at DESC")

	switch role {
	case constants.RoleAdmin:
		q = q.Where("attendance_correction_status = ?", m.CorrectionCoordinatorApproved)
	default:
		sectionIDs, err := s.Registry.CoordinatorSectionIDs(tc.TeacherID)
		if err != nil {
			return nil, err
		}
		if len(sectionIDs) > 0 {
			q = q.Where("attendance_correction_status = ? AND attendance_correction_section_id IN ?",
				m.CorrectionRequested, sectionIDs)
		} else {
			q = q.Where("attendance_correction_requested_by = ?", tc.UserID)
		}
	}

	var rows []m.AttendanceCorrectionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) AllRequests(schoolID uuid.UUID, status *string, offset, limit int) ([]m.AttendanceCorrectionModel, int64, error) {
	q := s.DB.Model(&m.AttendanceCorrectionModel{}).
		Where("attendance_correction_school_id = ?", schoolID)
	if status != nil && *status != "" {
		q = q.Where("attendance_correction_status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []m.AttendanceCorrectionModel
	if err := q.Order("attendance_correction_created_at DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Service) load(correctionID, schoolID uuid.UUID) (m.AttendanceCorrectionModel, error) {
	var row m.AttendanceCorrectionModel
	err := s.DB.
		Where("attendance_correction_id = ? AND attendance_correction_school_id = ?", correctionID, schoolID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.AttendanceCorrectionModel{}, fiber.NewError(fiber.StatusNotFound, "Pengajuan koreksi tidak ditemukan")
	}
	return row, err
}
