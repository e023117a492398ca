package dto

type SelfVerifyRequest struct {
	FullName  string `json:"full_name" validate:"required,min=1,max=100"`
	Phone     string `json:"phone" validate:"required,min=10,max=20"`
	CNIC      string `json:"cnic" validate:"required,min=13,max=20"`
	Institute string `json:"institute" validate:"required,min=1,max=120"`
}

type UpdateStudentProfileRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=10,max=20"`
	Institute *string `json:"institute" validate:"omitempty,min=1,max=120"`
}

type UpdateManagerProfileRequest struct {
	OwnerName *string `json:"owner_name" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=10,max=20"`
}

type TerminateUserRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}
