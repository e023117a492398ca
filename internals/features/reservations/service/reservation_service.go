package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	hostelModel "hostelshub_backend/internals/features/hostels/model"
	"hostelshub_backend/internals/features/reservations/dto"
	"hostelshub_backend/internals/features/reservations/model"
	userService "hostelshub_backend/internals/features/users/user/service"
	helper "hostelshub_backend/internals/helpers"
)

// CreateReservation queues a self-verified student for a manager's
// answer. Reservations never hold inventory.
func CreateReservation(db *gorm.DB, userID uuid.UUID, req *dto.CreateReservationRequest) (*model.ReservationModel, error) {
	student, err := userService.StudentProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	if !student.SelfVerified {
		return nil, helper.NewForbidden("Verify your profile before reserving a room")
	}
	if student.CurrentHostelID != nil {
		return nil, helper.NewConflict("You already live in a hostel")
	}

	var hostel hostelModel.HostelModel
	if err := db.First(&hostel, "id = ? AND is_active = true", req.HostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Hostel not found")
		}
		return nil, helper.NewInternal(err)
	}
	if hostel.Rooms().Find(req.RoomType) == nil {
		return nil, helper.NewNotFound("Room type not available in this hostel")
	}

	var active int64
	if err := db.Model(&model.ReservationModel{}).
		Where("student_id = ? AND hostel_id = ? AND room_type = ? AND status IN ?",
			student.ID, req.HostelID, req.RoomType, model.ActiveReservationStatuses).
		Count(&active).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	if active > 0 {
		return nil, helper.NewConflict("You already have an open reservation for this room type")
	}

	resv := model.ReservationModel{
		StudentID: student.ID,
		HostelID:  req.HostelID,
		RoomType:  req.RoomType,
		Message:   req.Message,
		Status:    model.ReservationPending,
	}
	if err := db.Create(&resv).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return &resv, nil
}

// CancelReservation lets the owning student withdraw a PENDING request.
func CancelReservation(db *gorm.DB, userID, reservationID uuid.UUID) error {
	student, err := userService.StudentProfileByUser(db, userID)
	if err != nil {
		return err
	}

	var resv model.ReservationModel
	if err := db.First(&resv, "id = ? AND student_id = ?", reservationID, student.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NewNotFound("Reservation not found")
		}
		return helper.NewInternal(err)
	}
	if resv.Status != model.ReservationPending {
		return helper.NewConflict("Only pending reservations can be cancelled")
	}

	if err := db.Model(&resv).Update("status", model.ReservationCancelled).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}

// MyReservations lists the student's reservations, newest first.
func MyReservations(db *gorm.DB, userID uuid.UUID) ([]model.ReservationModel, error) {
	student, err := userService.StudentProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	var reservations []model.ReservationModel
	if err := db.Preload("Hostel").
		Where("student_id = ?", student.ID).
		Order("created_at DESC").
		Find(&reservations).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return reservations, nil
}

// HostelReservations lists reservations for one of the manager's
// hostels, optionally filtered by status.
func HostelReservations(db *gorm.DB, managerUserID, hostelID uuid.UUID, status string) ([]model.ReservationModel, error) {
	manager, err := userService.ManagerProfileByUser(db, managerUserID)
	if err != nil {
		return nil, err
	}

	var hostel hostelModel.HostelModel
	if err := db.First(&hostel, "id = ? AND manager_id = ?", hostelID, manager.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Hostel not found")
		}
		return nil, helper.NewInternal(err)
	}

	q := db.Preload("Student.User").Where("hostel_id = ?", hostelID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var reservations []model.ReservationModel
	if err := q.Order("created_at ASC").Find(&reservations).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return reservations, nil
}

// ReviewReservation answers a PENDING reservation. Accepting does not
// touch room availability; that happens only at booking approval.
func ReviewReservation(db *gorm.DB, managerUserID, reservationID uuid.UUID, req *dto.ReviewReservationRequest) (*model.ReservationModel, error) {
	manager, err := userService.ManagerProfileByUser(db, managerUserID)
	if err != nil {
		return nil, err
	}

	var resv model.ReservationModel
	if err := db.First(&resv, "id = ?", reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Reservation not found")
		}
		return nil, helper.NewInternal(err)
	}

	var hostel hostelModel.HostelModel
	if err := db.First(&hostel, "id = ?", resv.HostelID).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	if hostel.ManagerID != manager.ID {
		return nil, helper.NewForbidden("This reservation belongs to another manager's hostel")
	}
	if resv.Status != model.ReservationPending {
		return nil, helper.NewConflict("Only pending reservations can be reviewed")
	}

	updates := map[string]any{"status": req.Status}
	if req.Status == model.ReservationRejected {
		updates["reject_reason"] = req.RejectReason
	}
	if err := db.Model(&resv).Updates(updates).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	resv.Status = req.Status
	return &resv, nil
}
