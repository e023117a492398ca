package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportOpen      = "OPEN"
	ReportResolved  = "RESOLVED"
	ReportDismissed = "DISMISSED"
)

// ReportModel: a student flags a hostel/booking/manager for admins to
// arbitrate. Deleted together with the account that filed it.
type ReportModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	ManagerID  *uuid.UUID `gorm:"type:uuid;index" json:"manager_id,omitempty"`
	HostelID   *uuid.UUID `gorm:"type:uuid;index" json:"hostel_id,omitempty"`
	BookingID  *uuid.UUID `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	Reason     string     `gorm:"size:120;not null" json:"reason"`
	Details    string     `gorm:"type:text" json:"details"`
	Status     string     `gorm:"type:varchar(10);not null;default:'OPEN';index" json:"status"`
	ResolvedBy *uuid.UUID `gorm:"type:uuid" json:"resolved_by,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReportModel) TableName() string {
	return "reports"
}
