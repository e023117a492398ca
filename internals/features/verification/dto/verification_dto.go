package dto

import "hostelshub_backend/internals/features/verification/model"

type SubmitVerificationRequest struct {
	InitialHostelNames []string           `json:"initial_hostel_names" validate:"required,min=1,dive,min=1,max=120"`
	OwnerName          string             `json:"owner_name" validate:"required,min=1,max=100"`
	City               string             `json:"city" validate:"required,min=1,max=80"`
	Address            string             `json:"address" validate:"required,min=1,max=255"`
	BuildingImages     []string           `json:"building_images" validate:"omitempty,dive,url"`
	HostelFor          string             `json:"hostel_for" validate:"required,oneof=BOYS GIRLS"`
	EasypaisaNumber    *string            `json:"easypaisa_number" validate:"omitempty,min=10,max=20"`
	JazzcashNumber     *string            `json:"jazzcash_number" validate:"omitempty,min=10,max=20"`
	CustomBanks        []model.CustomBank `json:"custom_banks"`
	AcceptedRules      bool               `json:"accepted_rules" validate:"required"`
}

type ReviewVerificationRequest struct {
	Status  string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Comment string `json:"comment" validate:"required_if=Status REJECTED,max=500"`
}
