package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is written once per booking, at leave time. The unique
// index on BookingID enforces the one-review-per-booking rule.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	HostelID  uuid.UUID `gorm:"type:uuid;not null;index" json:"hostel_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Booking *BookingModel `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
