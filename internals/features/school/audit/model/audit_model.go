package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActionCorrectionApplied = "CORRECTION_APPLIED"
)

type AuditLogModel struct {
	AuditLogID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:audit_log_id" json:"audit_log_id"`
	AuditLogOrgID    uuid.UUID `gorm:"type:uuid;not null;column:audit_log_org_id" json:"audit_log_org_id"`
	AuditLogSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:audit_log_school_id" json:"audit_log_school_id"`

	AuditLogEntity   string    `gorm:"type:varchar(50);not null;column:audit_log_entity" json:"audit_log_entity"`
	AuditLogEntityID uuid.UUID `gorm:"type:uuid;not null;index;column:audit_log_entity_id" json:"audit_log_entity_id"`
	AuditLogAction   string    `gorm:"type:varchar(50);not null;column:audit_log_action" json:"audit_log_action"`

	AuditLogOldValue datatypes.JSON `gorm:"type:jsonb;column:audit_log_old_value" json:"audit_log_old_value,omitempty"`
	AuditLogNewValue datatypes.JSON `gorm:"type:jsonb;column:audit_log_new_value" json:"audit_log_new_value,omitempty"`

	AuditLogPerformedBy uuid.UUID `gorm:"type:uuid;not null;column:audit_log_performed_by" json:"audit_log_performed_by"`
	AuditLogReason      *string   `gorm:"column:audit_log_reason" json:"audit_log_reason,omitempty"`

	AuditLogCreatedAt time.Time `gorm:"column:audit_log_created_at;autoCreateTime" json:"audit_log_created_at"`
}

func (AuditLogModel) TableName() string { return "audit_logs" }
