package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "hostelshub_backend/internals/features/users/user/model"
	helper "hostelshub_backend/internals/helpers"
)

// Shared actor lookups. Every privileged service method resolves the
// acting profile through these so ownership checks read the same way
// everywhere.

func StudentProfileByUser(db *gorm.DB, userID uuid.UUID) (*userModel.StudentProfileModel, error) {
	var profile userModel.StudentProfileModel
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Student profile not found")
		}
		return nil, helper.NewInternal(err)
	}
	return &profile, nil
}

func ManagerProfileByUser(db *gorm.DB, userID uuid.UUID) (*userModel.ManagerProfileModel, error) {
	var profile userModel.ManagerProfileModel
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Manager profile not found")
		}
		return nil, helper.NewInternal(err)
	}
	return &profile, nil
}
