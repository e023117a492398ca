package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel pairs one student with one manager. The unique
// index keeps a single thread per pair.
type ConversationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_conversation_pair,priority:1" json:"student_id"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_conversation_pair,priority:2" json:"manager_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConversationModel) TableName() string {
	return "conversations"
}

type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"conversation_id"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	Body           string    `gorm:"type:text;not null" json:"body"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (MessageModel) TableName() string {
	return "messages"
}
