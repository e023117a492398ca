package model

import (
	"time"

	"github.com/google/uuid"

	hostelModel "hostelshub_backend/internals/features/hostels/model"
	userModel "hostelshub_backend/internals/features/users/user/model"
)

/* ==============================
   ENUM: booking status / type / kick reason
============================== */

const (
	BookingPending     = "PENDING"
	BookingApproved    = "APPROVED"
	BookingDisapproved = "DISAPPROVED"
	BookingLeft        = "LEFT"
	BookingCompleted   = "COMPLETED"
)

const (
	BookingTypeRegular = "REGULAR"
	BookingTypeUrgent  = "URGENT"
)

const (
	KickReasonLeftHostel    = "LEFT_HOSTEL"
	KickReasonViolatedRules = "VIOLATED_RULES"
)

// ActiveStatuses are the statuses whose lifecycle reached APPROVED;
// the monthly fee counts REGULAR bookings in these states.
var ActiveStatuses = []string{BookingApproved, BookingLeft, BookingCompleted}

// BookingModel links one student to one hostel room type. Payment runs
// over bank transfer, so the evidence fields carry image URLs rather
// than gateway references.
type BookingModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	HostelID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"hostel_id"`
	ReservationID *uuid.UUID `gorm:"type:uuid" json:"reservation_id,omitempty"`

	RoomType    string  `gorm:"type:varchar(20);not null" json:"room_type"`
	BookingType string  `gorm:"type:varchar(10);not null;default:'REGULAR';index" json:"booking_type"`
	Status      string  `gorm:"type:varchar(15);not null;default:'PENDING';index" json:"status"`
	Amount      float64 `gorm:"not null" json:"amount"`

	TransactionImage string `gorm:"size:500;not null" json:"transaction_image"`
	TransactionDate  string `gorm:"size:20;not null" json:"transaction_date"`
	TransactionTime  string `gorm:"size:20;not null" json:"transaction_time"`
	FromAccount      string `gorm:"size:60;not null" json:"from_account"`
	ToAccount        string `gorm:"size:60;not null" json:"to_account"`

	RefundImage *string `gorm:"size:500" json:"refund_image,omitempty"`
	RefundDate  *string `gorm:"size:20" json:"refund_date,omitempty"`
	RefundTime  *string `gorm:"size:20" json:"refund_time,omitempty"`

	KickReason      *string    `gorm:"type:varchar(20)" json:"kick_reason,omitempty"`
	KickByManagerID *uuid.UUID `gorm:"type:uuid" json:"kick_by_manager_id,omitempty"`

	UrgentLeaveDate *time.Time `json:"urgent_leave_date,omitempty"`
	LeaveDate       *time.Time `json:"leave_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Student *userModel.StudentProfileModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Hostel  *hostelModel.HostelModel       `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
}

func (BookingModel) TableName() string {
	return "bookings"
}
