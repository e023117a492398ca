package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "hostelshub_backend/internals/features/audit/model"
	hostelModel "hostelshub_backend/internals/features/hostels/model"
	"hostelshub_backend/internals/features/reports/dto"
	"hostelshub_backend/internals/features/reports/model"
	userService "hostelshub_backend/internals/features/users/user/service"
	helper "hostelshub_backend/internals/helpers"
)

// CreateReport files a complaint against a hostel (and implicitly its
// manager) for staff to arbitrate.
func CreateReport(db *gorm.DB, userID uuid.UUID, req *dto.CreateReportRequest) (*model.ReportModel, error) {
	student, err := userService.StudentProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	if req.HostelID == nil && req.BookingID == nil {
		return nil, helper.NewValidation("Report must reference a hostel or a booking")
	}

	report := model.ReportModel{
		StudentID: student.ID,
		HostelID:  req.HostelID,
		BookingID: req.BookingID,
		Reason:    req.Reason,
		Details:   req.Details,
		Status:    model.ReportOpen,
	}

	if req.HostelID != nil {
		var hostel hostelModel.HostelModel
		if err := db.First(&hostel, "id = ?", *req.HostelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, helper.NewNotFound("Hostel not found")
			}
			return nil, helper.NewInternal(err)
		}
		report.ManagerID = &hostel.ManagerID
	}

	if err := db.Create(&report).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return &report, nil
}

// MyReports lists the student's filed reports.
func MyReports(db *gorm.DB, userID uuid.UUID) ([]model.ReportModel, error) {
	student, err := userService.StudentProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	var reports []model.ReportModel
	if err := db.Where("student_id = ?", student.ID).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return reports, nil
}

// AllReports lists reports for staff, optionally filtered by status.
func AllReports(db *gorm.DB, status string, paging helper.Paging) ([]model.ReportModel, int64, error) {
	q := db.Model(&model.ReportModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}

	var reports []model.ReportModel
	if err := q.Order("created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&reports).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}
	return reports, total, nil
}

// ResolveReport closes an OPEN report as resolved or dismissed.
func ResolveReport(db *gorm.DB, staffUserID, reportID uuid.UUID, req *dto.ResolveReportRequest) (*model.ReportModel, error) {
	var report model.ReportModel
	if err := db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Report not found")
		}
		return nil, helper.NewInternal(err)
	}
	if report.Status != model.ReportOpen {
		return nil, helper.NewConflict("Only open reports can be resolved")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&report).Updates(map[string]any{
			"status":      req.Status,
			"resolved_by": staffUserID,
		}).Error; err != nil {
			return helper.NewInternal(err)
		}
		return auditModel.Record(tx, "REPORT_"+req.Status, staffUserID.String(), "report", report.ID.String(), map[string]any{
			"reason": report.Reason,
		})
	})
	if err != nil {
		return nil, err
	}
	report.Status = req.Status
	report.ResolvedBy = &staffUserID
	return &report, nil
}
