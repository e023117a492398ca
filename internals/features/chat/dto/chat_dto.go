package dto

import "github.com/google/uuid"

type StartConversationRequest struct {
	// The other participant's user id.
	WithUserID uuid.UUID `json:"with_user_id" validate:"required"`
}

type SendMessageRequest struct {
	Body string `json:"body" validate:"required,min=1,max=4000"`
}
