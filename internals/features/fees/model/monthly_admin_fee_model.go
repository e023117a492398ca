package model

import (
	"time"

	"github.com/google/uuid"

	hostelModel "hostelshub_backend/internals/features/hostels/model"
)

const (
	FeePending  = "PENDING"
	FeeApproved = "APPROVED"
	FeeRejected = "REJECTED"
)

// FeePerStudent is the platform rate per REGULAR student per month.
const FeePerStudent = 100.0

// MonthlyAdminFeeModel is the per-hostel, per-month platform fee owed
// by the manager. One row per (manager, hostel, month); an APPROVED row
// reverts to PENDING when new REGULAR students join that month.
type MonthlyAdminFeeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_manager_hostel_month,priority:1" json:"manager_id"`
	HostelID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_manager_hostel_month,priority:2" json:"hostel_id"`
	Month     string    `gorm:"type:varchar(7);not null;uniqueIndex:uniq_manager_hostel_month,priority:3" json:"month"`

	StudentCount      int     `gorm:"not null;default:0" json:"student_count"`
	TotalRevenue      float64 `gorm:"not null;default:0" json:"total_revenue"`
	FeeAmount         float64 `gorm:"not null;default:0" json:"fee_amount"`
	PaymentProofImage *string `gorm:"size:500" json:"payment_proof_image,omitempty"`

	Status       string     `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"status"`
	AdminComment *string    `gorm:"size:500" json:"admin_comment,omitempty"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	SubmittedAt time.Time  `gorm:"not null" json:"submitted_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Hostel *hostelModel.HostelModel `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
}

func (MonthlyAdminFeeModel) TableName() string {
	return "monthly_admin_fees"
}
