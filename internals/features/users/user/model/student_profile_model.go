package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfileModel holds the student side of a user. CurrentHostelID
// is the single-occupancy invariant: a student lives in zero or one
// hostel at a time.
type StudentProfileModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName        string     `gorm:"size:100" json:"full_name"`
	Phone           string     `gorm:"size:20" json:"phone"`
	CNIC            string     `gorm:"size:20" json:"cnic"`
	Institute       string     `gorm:"size:120" json:"institute"`
	SelfVerified    bool       `gorm:"not null;default:false" json:"self_verified"`
	CurrentHostelID *uuid.UUID `gorm:"type:uuid;index" json:"current_hostel_id,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (StudentProfileModel) TableName() string {
	return "student_profiles"
}
