package model

import (
	"time"

	"github.com/google/uuid"
)

// ManagerProfileModel holds the manager side of a user. Verified is set
// by an admin approving a verification request; unverified managers may
// not list hostels.
type ManagerProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	OwnerName string    `gorm:"size:100" json:"owner_name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ManagerProfileModel) TableName() string {
	return "manager_profiles"
}
