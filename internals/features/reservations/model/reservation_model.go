package model

import (
	"time"

	"github.com/google/uuid"

	hostelModel "hostelshub_backend/internals/features/hostels/model"
	userModel "hostelshub_backend/internals/features/users/user/model"
)

const (
	ReservationPending   = "PENDING"
	ReservationAccepted  = "ACCEPTED"
	ReservationRejected  = "REJECTED"
	ReservationCancelled = "CANCELLED"
)

// ActiveReservationStatuses: a student may hold at most one of these
// per (hostel, room type) pair.
var ActiveReservationStatuses = []string{ReservationPending, ReservationAccepted}

// ReservationModel is a soft pre-booking intent: it never holds
// inventory, it just queues the student for a manager's answer.
type ReservationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	HostelID     uuid.UUID `gorm:"type:uuid;not null;index" json:"hostel_id"`
	RoomType     string    `gorm:"type:varchar(20);not null" json:"room_type"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(15);not null;default:'PENDING';index" json:"status"`
	RejectReason *string   `gorm:"type:text" json:"reject_reason,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Student *userModel.StudentProfileModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Hostel  *hostelModel.HostelModel       `gorm:"foreignKey:HostelID" json:"hostel,omitempty"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}
