package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "hostelshub_backend/internals/features/audit/model"
	bookingModel "hostelshub_backend/internals/features/bookings/model"
	feeModel "hostelshub_backend/internals/features/fees/model"
	hostelModel "hostelshub_backend/internals/features/hostels/model"
	feeDTO "hostelshub_backend/internals/features/fees/dto"
	userService "hostelshub_backend/internals/features/users/user/service"
	helper "hostelshub_backend/internals/helpers"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MonthWindow returns the [start, end) range covered by a YYYY-MM month key.
func MonthWindow(month string) (time.Time, time.Time, error) {
	if !monthPattern.MatchString(month) {
		return time.Time{}, time.Time{}, helper.NewValidation("Month must be in YYYY-MM format")
	}
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, helper.NewValidation("Month must be in YYYY-MM format")
	}
	return start, start.AddDate(0, 1, 0), nil
}

// MonthKey formats a timestamp into the YYYY-MM key fees are bucketed by.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// countFeePayingStudents counts regular bookings created in the month window
// that were ever approved. Urgent bookings are exempt from the admin fee.
func countFeePayingStudents(tx *gorm.DB, hostelID uuid.UUID, start, end time.Time) (int64, float64, error) {
	type row struct {
		Count int64
		Total float64
	}
	var r row
	err := tx.Model(&bookingModel.BookingModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("hostel_id = ?", hostelID).
		Where("booking_type = ?", bookingModel.BookingTypeRegular).
		Where("status IN ?", bookingModel.ActiveStatuses).
		Where("created_at >= ? AND created_at < ?", start, end).
		Scan(&r).Error
	if err != nil {
		return 0, 0, helper.NewInternal(err)
	}
	return r.Count, r.Total, nil
}

// SubmitMonthlyFee creates or resubmits the manager's admin fee record for one
// hostel and month. A REJECTED record may be resubmitted, an APPROVED or
// PENDING one may not.
// resubmissionBlocked applies the resubmission rules against an existing
// record for the month. A pending submission blocks, and so does an
// approved one covering the same student count. A rejected record, or an
// approved one whose count has since grown, goes back to review.
func resubmissionBlocked(existing *feeModel.MonthlyAdminFeeModel, count int) error {
	if existing.Status == feeModel.FeePending {
		return helper.NewConflict(
			fmt.Sprintf("Fee for %s is already awaiting review", existing.Month))
	}
	if existing.Status == feeModel.FeeApproved && count <= existing.StudentCount {
		return helper.NewConflict(
			fmt.Sprintf("Fee for %s is already approved", existing.Month))
	}
	return nil
}

func SubmitMonthlyFee(db *gorm.DB, managerUserID uuid.UUID, req *feeDTO.SubmitFeeRequest) (*feeModel.MonthlyAdminFeeModel, error) {
	manager, err := userService.ManagerProfileByUser(db, managerUserID)
	if err != nil {
		return nil, err
	}

	start, end, err := MonthWindow(req.Month)
	if err != nil {
		return nil, err
	}

	var hostel hostelModel.HostelModel
	if err := db.Where("id = ? AND manager_id = ?", req.HostelID, manager.ID).
		First(&hostel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Hostel not found")
		}
		return nil, helper.NewInternal(err)
	}

	var fee feeModel.MonthlyAdminFeeModel
	err = db.Transaction(func(tx *gorm.DB) error {
		count, total, err := countFeePayingStudents(tx, hostel.ID, start, end)
		if err != nil {
			return err
		}
		if count == 0 {
			return helper.NewDomainRule("No fee-paying students for this month")
		}

		var existing feeModel.MonthlyAdminFeeModel
		findErr := tx.Where("manager_id = ? AND hostel_id = ? AND month = ?",
			manager.ID, hostel.ID, req.Month).
			First(&existing).Error

		now := time.Now()
		switch {
		case findErr == nil:
			if err := resubmissionBlocked(&existing, int(count)); err != nil {
				return err
			}
			existing.StudentCount = int(count)
			existing.TotalRevenue = total
			existing.FeeAmount = float64(count) * feeModel.FeePerStudent
			existing.PaymentProofImage = &req.PaymentProofImage
			existing.Status = feeModel.FeePending
			existing.AdminComment = nil
			existing.ReviewedBy = nil
			existing.SubmittedAt = now
			if err := tx.Save(&existing).Error; err != nil {
				return helper.NewInternal(err)
			}
			fee = existing
			return nil
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			fee = feeModel.MonthlyAdminFeeModel{
				ManagerID:         manager.ID,
				HostelID:          hostel.ID,
				Month:             req.Month,
				StudentCount:      int(count),
				TotalRevenue:      total,
				FeeAmount:         float64(count) * feeModel.FeePerStudent,
				PaymentProofImage: &req.PaymentProofImage,
				Status:            feeModel.FeePending,
				SubmittedAt:       now,
			}
			if err := tx.Create(&fee).Error; err != nil {
				return helper.NewInternal(err)
			}
			return nil
		default:
			return helper.NewInternal(findErr)
		}
	})
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// CheckAndResetFeeForNewStudent runs inside a booking-approval transaction.
// When an APPROVED fee already covers the booking's month, the new student
// grows the count past what was approved, so the record drops back to PENDING
// with the reviewer cleared and an audit entry.
func CheckAndResetFeeForNewStudent(tx *gorm.DB, hostelID, performedBy uuid.UUID, bookingCreatedAt time.Time) error {
	month := MonthKey(bookingCreatedAt)

	var fee feeModel.MonthlyAdminFeeModel
	err := tx.Where("hostel_id = ? AND month = ? AND status = ?",
		hostelID, month, feeModel.FeeApproved).
		First(&fee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return helper.NewInternal(err)
	}

	start, end, err := MonthWindow(month)
	if err != nil {
		return err
	}
	count, total, err := countFeePayingStudents(tx, hostelID, start, end)
	if err != nil {
		return err
	}
	if int(count) <= fee.StudentCount {
		return nil
	}

	comment := "Student count grew after approval. Fee returned for resubmission."
	fee.StudentCount = int(count)
	fee.TotalRevenue = total
	fee.FeeAmount = float64(count) * feeModel.FeePerStudent
	fee.Status = feeModel.FeePending
	fee.AdminComment = &comment
	fee.ReviewedBy = nil
	if err := tx.Save(&fee).Error; err != nil {
		return helper.NewInternal(err)
	}

	return auditModel.Record(tx, "FEE_RESET", performedBy.String(), "monthly_admin_fee", fee.ID.String(), map[string]any{
		"month":         month,
		"hostel_id":     hostelID,
		"student_count": count,
	})
}

// ReviewFee lets an admin approve or reject a pending fee submission.
func ReviewFee(db *gorm.DB, adminUserID, feeID uuid.UUID, req *feeDTO.ReviewFeeRequest) (*feeModel.MonthlyAdminFeeModel, error) {
	var fee feeModel.MonthlyAdminFeeModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fee, "id = ?", feeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.NewNotFound("Fee record not found")
			}
			return helper.NewInternal(err)
		}
		if fee.Status != feeModel.FeePending {
			return helper.NewConflict("Only pending fees can be reviewed")
		}

		fee.Status = req.Status
		fee.ReviewedBy = &adminUserID
		if req.Comment != "" {
			fee.AdminComment = &req.Comment
		}
		if err := tx.Save(&fee).Error; err != nil {
			return helper.NewInternal(err)
		}

		return auditModel.Record(tx, "FEE_"+req.Status, adminUserID.String(), "monthly_admin_fee", fee.ID.String(), map[string]any{
			"month":      fee.Month,
			"hostel_id":  fee.HostelID,
			"fee_amount": fee.FeeAmount,
			"comment":    req.Comment,
		})
	})
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

// MyFees lists the calling manager's fee records, newest month first.
func MyFees(db *gorm.DB, managerUserID uuid.UUID) ([]feeModel.MonthlyAdminFeeModel, error) {
	manager, err := userService.ManagerProfileByUser(db, managerUserID)
	if err != nil {
		return nil, err
	}
	var fees []feeModel.MonthlyAdminFeeModel
	if err := db.Where("manager_id = ?", manager.ID).
		Order("month DESC").Find(&fees).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return fees, nil
}

// AllFees lists fee records for admin review, optionally filtered by status.
func AllFees(db *gorm.DB, status string, paging helper.Paging) ([]feeModel.MonthlyAdminFeeModel, int64, error) {
	q := db.Model(&feeModel.MonthlyAdminFeeModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}

	var fees []feeModel.MonthlyAdminFeeModel
	if err := q.Order("month DESC, created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&fees).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}
	return fees, total, nil
}

// FeeDue describes where the current month's fee stands for one hostel,
// shown to managers as a reminder. Status is nil when nothing has been
// submitted yet.
type FeeDue struct {
	HostelID               uuid.UUID `json:"hostel_id"`
	HostelName             string    `json:"hostel_name"`
	Month                  string    `json:"month"`
	ActiveStudents         int64     `json:"active_students"`
	PaidStudentCount       int       `json:"paid_student_count"`
	AdditionalStudents     int64     `json:"additional_students"`
	FeeAmount              float64   `json:"fee_amount"`
	AdditionalFeeAmount    float64   `json:"additional_fee_amount"`
	Submitted              bool      `json:"submitted"`
	Status                 *string   `json:"status"`
	NeedsAdditionalPayment bool      `json:"needs_additional_payment"`
}

// PendingFeeSummary reports, per hostel owned by the manager, where the
// current month's fee stands against the live regular-student count. An
// APPROVED record whose count has since grown is shown as PENDING again
// with the additional amount owed.
func PendingFeeSummary(db *gorm.DB, managerUserID uuid.UUID) ([]FeeDue, error) {
	manager, err := userService.ManagerProfileByUser(db, managerUserID)
	if err != nil {
		return nil, err
	}

	var hostels []hostelModel.HostelModel
	if err := db.Where("manager_id = ?", manager.ID).Find(&hostels).Error; err != nil {
		return nil, helper.NewInternal(err)
	}

	month := MonthKey(time.Now())
	start, end, err := MonthWindow(month)
	if err != nil {
		return nil, err
	}

	summary := make([]FeeDue, 0, len(hostels))
	for _, h := range hostels {
		var record *feeModel.MonthlyAdminFeeModel
		var existing feeModel.MonthlyAdminFeeModel
		findErr := db.Where("manager_id = ? AND hostel_id = ? AND month = ?",
			manager.ID, h.ID, month).
			First(&existing).Error
		switch {
		case findErr == nil:
			record = &existing
		case errors.Is(findErr, gorm.ErrRecordNotFound):
		default:
			return nil, helper.NewInternal(findErr)
		}

		count, _, err := countFeePayingStudents(db, h.ID, start, end)
		if err != nil {
			return nil, err
		}

		paid := 0
		if record != nil && record.Status == feeModel.FeeApproved {
			paid = record.StudentCount
		}
		additional := count - int64(paid)
		if additional < 0 {
			additional = 0
		}
		needsMore := record != nil && record.Status == feeModel.FeeApproved && additional > 0

		entry := FeeDue{
			HostelID:               h.ID,
			HostelName:             h.HostelName,
			Month:                  month,
			ActiveStudents:         count,
			PaidStudentCount:       paid,
			FeeAmount:              float64(count) * feeModel.FeePerStudent,
			Submitted:              record != nil && !needsMore,
			NeedsAdditionalPayment: needsMore,
		}
		if record != nil {
			status := record.Status
			if needsMore {
				// Students joined after the approval, so the record is
				// effectively awaiting a top-up payment again.
				status = feeModel.FeePending
			}
			entry.Status = &status
		}
		if needsMore {
			entry.AdditionalStudents = additional
			entry.AdditionalFeeAmount = float64(additional) * feeModel.FeePerStudent
		}
		summary = append(summary, entry)
	}
	return summary, nil
}
