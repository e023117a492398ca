package dto

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HostelID      uuid.UUID  `json:"hostel_id" validate:"required"`
	RoomType      string     `json:"room_type" validate:"required,oneof=SHARED PRIVATE SHARED_FULLROOM"`
	BookingType   string     `json:"booking_type" validate:"omitempty,oneof=REGULAR URGENT"`
	ReservationID *uuid.UUID `json:"reservation_id"`

	TransactionImage string `json:"transaction_image" validate:"required,url"`
	TransactionDate  string `json:"transaction_date" validate:"required"`
	TransactionTime  string `json:"transaction_time" validate:"required"`
	FromAccount      string `json:"from_account" validate:"required"`
	ToAccount        string `json:"to_account" validate:"required"`
}

type DisapproveBookingRequest struct {
	RefundImage string `json:"refund_image" validate:"required,url"`
	RefundDate  string `json:"refund_date" validate:"required"`
	RefundTime  string `json:"refund_time" validate:"required"`
}

type LeaveHostelRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"required,min=1"`
	Reason string `json:"reason"`
}

type KickStudentRequest struct {
	KickReason string `json:"kick_reason" validate:"required,oneof=LEFT_HOSTEL VIOLATED_RULES"`
}
