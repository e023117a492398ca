package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	VerificationPending  = "PENDING"
	VerificationApproved = "APPROVED"
	VerificationRejected = "REJECTED"
)

// CustomBank is a payout account a manager accepts transfers on.
type CustomBank struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IBAN          string `json:"iban,omitempty"`
}

// VerificationRequestModel is a manager's application to be verified.
// Approval flips ManagerProfile.Verified, which gates hostel listing.
type VerificationRequestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;index" json:"manager_id"`

	InitialHostelNames pq.StringArray                   `gorm:"type:text[];not null" json:"initial_hostel_names"`
	OwnerName          string                           `gorm:"size:100;not null" json:"owner_name"`
	City               string                           `gorm:"size:80;not null" json:"city"`
	Address            string                           `gorm:"size:255;not null" json:"address"`
	BuildingImages     pq.StringArray                   `gorm:"type:text[]" json:"building_images"`
	HostelFor          string                           `gorm:"type:varchar(10);not null" json:"hostel_for"`
	EasypaisaNumber    *string                          `gorm:"size:20" json:"easypaisa_number,omitempty"`
	JazzcashNumber     *string                          `gorm:"size:20" json:"jazzcash_number,omitempty"`
	CustomBanks        datatypes.JSONType[[]CustomBank] `json:"custom_banks"`
	AcceptedRules      bool                             `gorm:"not null;default:false" json:"accepted_rules"`

	Status       string     `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"status"`
	AdminComment *string    `gorm:"type:text" json:"admin_comment,omitempty"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (VerificationRequestModel) TableName() string {
	return "verification_requests"
}
