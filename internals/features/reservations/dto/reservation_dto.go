package dto

import "github.com/google/uuid"

type CreateReservationRequest struct {
	HostelID uuid.UUID `json:"hostel_id" validate:"required"`
	RoomType string    `json:"room_type" validate:"required,oneof=SHARED PRIVATE SHARED_FULLROOM"`
	Message  string    `json:"message" validate:"max=500"`
}

type ReviewReservationRequest struct {
	Status       string `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
	RejectReason string `json:"reject_reason" validate:"required_if=Status REJECTED,max=500"`
}
