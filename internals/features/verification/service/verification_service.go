package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	auditModel "hostelshub_backend/internals/features/audit/model"
	userModel "hostelshub_backend/internals/features/users/user/model"
	userService "hostelshub_backend/internals/features/users/user/service"
	"hostelshub_backend/internals/features/verification/dto"
	"hostelshub_backend/internals/features/verification/model"
	helper "hostelshub_backend/internals/helpers"
)

// SubmitVerification files the manager's application. One open request
// at a time; an already verified manager cannot re-apply.
func SubmitVerification(db *gorm.DB, userID uuid.UUID, req *dto.SubmitVerificationRequest) (*model.VerificationRequestModel, error) {
	manager, err := userService.ManagerProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	if manager.Verified {
		return nil, helper.NewConflict("Your account is already verified")
	}
	if !req.AcceptedRules {
		return nil, helper.NewValidation("You must accept the platform rules")
	}
	if req.EasypaisaNumber == nil && req.JazzcashNumber == nil && len(req.CustomBanks) == 0 {
		return nil, helper.NewValidation("At least one payout account is required")
	}

	var open int64
	if err := db.Model(&model.VerificationRequestModel{}).
		Where("manager_id = ? AND status = ?", manager.ID, model.VerificationPending).
		Count(&open).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	if open > 0 {
		return nil, helper.NewConflict("You already have a verification request awaiting review")
	}

	request := model.VerificationRequestModel{
		ManagerID:          manager.ID,
		InitialHostelNames: pq.StringArray(req.InitialHostelNames),
		OwnerName:          req.OwnerName,
		City:               req.City,
		Address:            req.Address,
		BuildingImages:     pq.StringArray(req.BuildingImages),
		HostelFor:          req.HostelFor,
		EasypaisaNumber:    req.EasypaisaNumber,
		JazzcashNumber:     req.JazzcashNumber,
		CustomBanks:        datatypes.NewJSONType(req.CustomBanks),
		AcceptedRules:      req.AcceptedRules,
		Status:             model.VerificationPending,
	}
	if err := db.Create(&request).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return &request, nil
}

// MyVerification returns the manager's latest request.
func MyVerification(db *gorm.DB, userID uuid.UUID) (*model.VerificationRequestModel, error) {
	manager, err := userService.ManagerProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}

	var request model.VerificationRequestModel
	if err := db.Where("manager_id = ?", manager.ID).
		Order("created_at DESC").
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("No verification request found")
		}
		return nil, helper.NewInternal(err)
	}
	return &request, nil
}

// AllVerifications lists requests for staff review.
func AllVerifications(db *gorm.DB, status string, paging helper.Paging) ([]model.VerificationRequestModel, int64, error) {
	q := db.Model(&model.VerificationRequestModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}

	var requests []model.VerificationRequestModel
	if err := q.Order("created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&requests).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}
	return requests, total, nil
}

// VerificationByID loads one request for staff review.
func VerificationByID(db *gorm.DB, requestID uuid.UUID) (*model.VerificationRequestModel, error) {
	var request model.VerificationRequestModel
	if err := db.First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Verification request not found")
		}
		return nil, helper.NewInternal(err)
	}
	return &request, nil
}

// ReviewVerification answers a PENDING request. Approval flips the
// manager profile's Verified flag in the same transaction.
func ReviewVerification(db *gorm.DB, reviewerUserID, requestID uuid.UUID, req *dto.ReviewVerificationRequest) (*model.VerificationRequestModel, error) {
	var request model.VerificationRequestModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewNotFound("Verification request not found")
			}
			return helper.NewInternal(err)
		}
		if request.Status != model.VerificationPending {
			return helper.NewConflict("Only pending requests can be reviewed")
		}

		request.Status = req.Status
		request.ReviewedBy = &reviewerUserID
		if req.Comment != "" {
			request.AdminComment = &req.Comment
		}
		if err := tx.Save(&request).Error; err != nil {
			return helper.NewInternal(err)
		}

		if req.Status == model.VerificationApproved {
			if err := tx.Model(&userModel.ManagerProfileModel{}).
				Where("id = ?", request.ManagerID).
				Update("verified", true).Error; err != nil {
				return helper.NewInternal(err)
			}
		}

		return auditModel.Record(tx, "VERIFICATION_"+req.Status, reviewerUserID.String(),
			"verification_request", request.ID.String(), map[string]any{
				"manager_id": request.ManagerID,
				"comment":    req.Comment,
			})
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}
