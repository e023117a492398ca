package model

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLogModel is the append-only record of privileged actions
// (termination, kick, fee review, verification review). Never updated
// or deleted except when the referenced account is hard-deleted.
type AuditLogModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Action      string         `gorm:"size:64;not null;index" json:"action"`
	PerformedBy string         `gorm:"size:64;not null;index" json:"performed_by"`
	TargetType  string         `gorm:"size:40;not null" json:"target_type"`
	TargetID    string         `gorm:"size:64;not null;index" json:"target_id"`
	Details     datatypes.JSON `json:"details,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// Record writes one audit entry on the given handle, which may be a
// transaction. Marshal failures fall back to an empty details document
// rather than failing the surrounding mutation.
func Record(db *gorm.DB, action, performedBy, targetType, targetID string, details interface{}) error {
	var doc datatypes.JSON
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			log.Printf("[WARN] audit details marshal: %v", err)
		} else {
			doc = datatypes.JSON(b)
		}
	}
	entry := AuditLogModel{
		Action:      action,
		PerformedBy: performedBy,
		TargetType:  targetType,
		TargetID:    targetID,
		Details:     doc,
	}
	return db.Create(&entry).Error
}
