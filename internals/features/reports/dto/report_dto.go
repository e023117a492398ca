package dto

import "github.com/google/uuid"

type CreateReportRequest struct {
	HostelID  *uuid.UUID `json:"hostel_id"`
	BookingID *uuid.UUID `json:"booking_id"`
	Reason    string     `json:"reason" validate:"required,min=1,max=120"`
	Details   string     `json:"details" validate:"max=2000"`
}

type ResolveReportRequest struct {
	Status string `json:"status" validate:"required,oneof=RESOLVED DISMISSED"`
}
