package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/school/audit/model"
)

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

type Event struct {
	OrgID    uuid.UUID
	SchoolID uuid.UUID

	Entity   string
	EntityID uuid.UUID
	Action   string

	OldValue interface{}
	NewValue interface{}

	PerformedBy uuid.UUID
	Reason      *string
}

// LogEvent: jejak audit tidak boleh menggagalkan operasi utama — error
// hanya dicatat ke log.
func (s *Service) LogEvent(ev Event) {
	row := m.AuditLogModel{
		AuditLogOrgID:       ev.OrgID,
		AuditLogSchoolID:    ev.SchoolID,
		AuditLogEntity:      ev.Entity,
		AuditLogEntityID:    ev.EntityID,
		AuditLogAction:      ev.Action,
		AuditLogOldValue:    marshalValue(ev.OldValue),
		AuditLogNewValue:    marshalValue(ev.NewValue),
		AuditLogPerformedBy: ev.PerformedBy,
		AuditLogReason:      ev.Reason,
	}
	if err := s.DB.Create(&row).Error; err != nil {
		log.Printf("[AUDIT] gagal menulis audit log %s/%s: %v", ev.Entity, ev.Action, err)
	}
}

// ListByEntity: riwayat audit per entity_id, terbaru dulu.
func (s *Service) ListByEntity(schoolID uuid.UUID, entityID *uuid.UUID, offset, limit int) ([]m.AuditLogModel, int64, error) {
	q := s.DB.Model(&m.AuditLogModel{}).
		Where("audit_log_school_id = ?", schoolID)
	if entityID != nil {
		q = q.Where("audit_log_entity_id = ?", *entityID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []m.AuditLogModel
	if err := q.Order("audit_log_created_at DESC").Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func marshalValue(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
