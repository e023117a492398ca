package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. A user owns exactly one role
// profile (student or manager); admins have no profile row.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName     string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email        string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password     string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID     *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role         string    `gorm:"type:varchar(20);not null;default:'STUDENT'" json:"role" validate:"omitempty,oneof=STUDENT MANAGER ADMIN SUBADMIN"`
	IsTerminated bool      `gorm:"not null;default:false" json:"is_terminated"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
