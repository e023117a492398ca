package dto

import "github.com/google/uuid"

type SubmitFeeRequest struct {
	HostelID          uuid.UUID `json:"hostel_id" validate:"required"`
	Month             string    `json:"month" validate:"required"`
	PaymentProofImage string    `json:"payment_proof_image" validate:"required,url"`
}

type ReviewFeeRequest struct {
	Status  string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Comment string `json:"comment"`
}
