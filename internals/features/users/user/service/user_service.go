package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/constants"
	auditModel "hostelshub_backend/internals/features/audit/model"
	bookingModel "hostelshub_backend/internals/features/bookings/model"
	chatModel "hostelshub_backend/internals/features/chat/model"
	feeModel "hostelshub_backend/internals/features/fees/model"
	hostelModel "hostelshub_backend/internals/features/hostels/model"
	reportModel "hostelshub_backend/internals/features/reports/model"
	reservationModel "hostelshub_backend/internals/features/reservations/model"
	authModel "hostelshub_backend/internals/features/users/auth/model"
	"hostelshub_backend/internals/features/users/user/dto"
	userModel "hostelshub_backend/internals/features/users/user/model"
	verificationModel "hostelshub_backend/internals/features/verification/model"
	helper "hostelshub_backend/internals/helpers"
)

// SelfVerify records the student's identity details. It is a one-shot
// declaration, not an admin review step; it gates reservations.
func SelfVerify(db *gorm.DB, userID uuid.UUID, req *dto.SelfVerifyRequest) (*userModel.StudentProfileModel, error) {
	student, err := StudentProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	if student.SelfVerified {
		return nil, helper.NewConflict("Your profile is already verified")
	}

	updates := map[string]any{
		"full_name":     req.FullName,
		"phone":         req.Phone,
		"cnic":          req.CNIC,
		"institute":     req.Institute,
		"self_verified": true,
	}
	if err := db.Model(student).Updates(updates).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return student, nil
}

// Me returns the user row plus whichever role profile exists.
func Me(db *gorm.DB, userID uuid.UUID) (map[string]any, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("User not found")
		}
		return nil, helper.NewInternal(err)
	}

	out := map[string]any{"user": user}
	switch user.Role {
	case constants.RoleStudent:
		if profile, err := StudentProfileByUser(db, userID); err == nil {
			out["profile"] = profile
		}
	case constants.RoleManager:
		if profile, err := ManagerProfileByUser(db, userID); err == nil {
			out["profile"] = profile
		}
	}
	return out, nil
}

// UpdateStudentProfile patches the mutable profile fields. CNIC and the
// verified flag are immutable after self-verification.
func UpdateStudentProfile(db *gorm.DB, userID uuid.UUID, req *dto.UpdateStudentProfileRequest) (*userModel.StudentProfileModel, error) {
	student, err := StudentProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Institute != nil {
		updates["institute"] = *req.Institute
	}
	if len(updates) == 0 {
		return student, nil
	}
	if err := db.Model(student).Updates(updates).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return student, nil
}

func UpdateManagerProfile(db *gorm.DB, userID uuid.UUID, req *dto.UpdateManagerProfileRequest) (*userModel.ManagerProfileModel, error) {
	manager, err := ManagerProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.OwnerName != nil {
		updates["owner_name"] = *req.OwnerName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if len(updates) == 0 {
		return manager, nil
	}
	if err := db.Model(manager).Updates(updates).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return manager, nil
}

// AllUsers lists accounts for staff, optionally filtered by role.
func AllUsers(db *gorm.DB, role string, paging helper.Paging) ([]userModel.UserModel, int64, error) {
	q := db.Model(&userModel.UserModel{})
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}
	return users, total, nil
}

// TerminateUser blocks an account from logging in. Only full admins may
// terminate, and staff accounts cannot be terminated.
func TerminateUser(db *gorm.DB, adminUserID, targetUserID uuid.UUID, reason string) error {
	if adminUserID == targetUserID {
		return helper.NewDomainRule("You cannot terminate your own account")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var target userModel.UserModel
		if err := tx.First(&target, "id = ?", targetUserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewNotFound("User not found")
			}
			return helper.NewInternal(err)
		}
		if target.Role == constants.RoleAdmin || target.Role == constants.RoleSubAdmin {
			return helper.NewForbidden("Staff accounts cannot be terminated")
		}
		if target.IsTerminated {
			return helper.NewConflict("Account is already terminated")
		}

		if err := tx.Model(&target).Update("is_terminated", true).Error; err != nil {
			return helper.NewInternal(err)
		}
		if err := revokeAllTokens(tx, targetUserID); err != nil {
			return err
		}
		return auditModel.Record(tx, "USER_TERMINATED", adminUserID.String(), "user", targetUserID.String(), map[string]any{
			"reason": reason,
			"role":   target.Role,
		})
	})
}

func revokeAllTokens(tx *gorm.DB, userID uuid.UUID) error {
	if err := tx.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", gorm.Expr("NOW()")).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}

// DeleteMyAccount hard-deletes the account and everything it owns in a
// single transaction. A student living in a hostel frees their room on
// the way out; a manager takes their hostels and every row hanging off
// them with them.
func DeleteMyAccount(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user userModel.UserModel
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewNotFound("User not found")
			}
			return helper.NewInternal(err)
		}

		switch user.Role {
		case constants.RoleStudent:
			if err := deleteStudentData(tx, userID); err != nil {
				return err
			}
		case constants.RoleManager:
			if err := deleteManagerData(tx, userID); err != nil {
				return err
			}
		default:
			return helper.NewForbidden("Staff accounts cannot be self-deleted")
		}

		if err := tx.Where("user_id = ?", userID).
			Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
			return helper.NewInternal(err)
		}
		if err := deleteConversations(tx, userID); err != nil {
			return err
		}
		if err := tx.Where("performed_by = ? OR target_id = ?", userID.String(), userID.String()).
			Delete(&auditModel.AuditLogModel{}).Error; err != nil {
			return helper.NewInternal(err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return helper.NewInternal(err)
		}
		return nil
	})
}

func deleteStudentData(tx *gorm.DB, userID uuid.UUID) error {
	var student userModel.StudentProfileModel
	if err := tx.First(&student, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return helper.NewInternal(err)
	}

	// Occupied rooms go back into inventory before the booking rows
	// disappear.
	var approved []bookingModel.BookingModel
	if err := tx.Where("student_id = ? AND status = ?",
		student.ID, bookingModel.BookingApproved).
		Find(&approved).Error; err != nil {
		return helper.NewInternal(err)
	}
	for _, booking := range approved {
		if err := restoreRoom(tx, booking.HostelID, booking.RoomType); err != nil {
			return err
		}
	}

	bookingIDs := tx.Model(&bookingModel.BookingModel{}).
		Select("id").
		Where("student_id = ?", student.ID)
	if err := tx.Where("booking_id IN (?)", bookingIDs).
		Delete(&bookingModel.ReviewModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("student_id = ?", student.ID).
		Delete(&bookingModel.BookingModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("student_id = ?", student.ID).
		Delete(&reservationModel.ReservationModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("student_id = ?", student.ID).
		Delete(&reportModel.ReportModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Delete(&student).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}

func deleteManagerData(tx *gorm.DB, userID uuid.UUID) error {
	var manager userModel.ManagerProfileModel
	if err := tx.First(&manager, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return helper.NewInternal(err)
	}

	// Everything hanging off the manager's hostels goes with them:
	// residents are moved out, then bookings, reviews, reservations,
	// reports and fees are removed before the hostels themselves.
	hostelIDs := tx.Model(&hostelModel.HostelModel{}).
		Select("id").
		Where("manager_id = ?", manager.ID)

	if err := tx.Model(&userModel.StudentProfileModel{}).
		Where("current_hostel_id IN (?)", hostelIDs).
		Update("current_hostel_id", nil).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("hostel_id IN (?)", hostelIDs).
		Delete(&bookingModel.ReviewModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("hostel_id IN (?)", hostelIDs).
		Delete(&bookingModel.BookingModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("hostel_id IN (?)", hostelIDs).
		Delete(&reservationModel.ReservationModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("hostel_id IN (?)", hostelIDs).
		Delete(&reportModel.ReportModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("manager_id = ?", manager.ID).
		Delete(&feeModel.MonthlyAdminFeeModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("manager_id = ?", manager.ID).
		Delete(&hostelModel.HostelModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("manager_id = ?", manager.ID).
		Delete(&verificationModel.VerificationRequestModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Delete(&manager).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}

func deleteConversations(tx *gorm.DB, userID uuid.UUID) error {
	conversationIDs := tx.Model(&chatModel.ConversationModel{}).
		Select("id").
		Where("student_id = ? OR manager_id = ?", userID, userID)
	if err := tx.Where("conversation_id IN (?)", conversationIDs).
		Delete(&chatModel.MessageModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Where("student_id = ? OR manager_id = ?", userID, userID).
		Delete(&chatModel.ConversationModel{}).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}

func restoreRoom(tx *gorm.DB, hostelID uuid.UUID, roomType string) error {
	var hostel hostelModel.HostelModel
	if err := tx.First(&hostel, "id = ?", hostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return helper.NewInternal(err)
	}
	rooms := hostel.Rooms()
	if !rooms.Adjust(roomType, +1) {
		return nil
	}
	hostel.SetRooms(rooms)
	if err := tx.Model(&hostelModel.HostelModel{}).
		Where("id = ?", hostelID).
		Update("room_types", hostel.RoomTypes).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}
