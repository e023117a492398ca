package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "hostelshub_backend/internals/features/audit/model"
	"hostelshub_backend/internals/features/bookings/dto"
	"hostelshub_backend/internals/features/bookings/model"
	feeService "hostelshub_backend/internals/features/fees/service"
	hostelModel "hostelshub_backend/internals/features/hostels/model"
	hostelService "hostelshub_backend/internals/features/hostels/service"
	reservationModel "hostelshub_backend/internals/features/reservations/model"
	userModel "hostelshub_backend/internals/features/users/user/model"
	userService "hostelshub_backend/internals/features/users/user/service"
	helper "hostelshub_backend/internals/helpers"
)

// regularBookingLastDay is the last calendar day on which a REGULAR
// booking may be submitted. From the next day the month is treated as
// already billed and only URGENT bookings are accepted.
const regularBookingLastDay = 12

func firstOfNextMonth(now time.Time) time.Time {
	y, m, _ := now.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
}

// priceForBooking applies the booking-period gate and resolves the
// amount the student owes. URGENT stays are billed at the room type's
// urgent rate and end on the first of the next month.
func priceForBooking(now time.Time, bookingType string, rt *hostelModel.RoomTypeConfig) (float64, *time.Time, error) {
	day := now.Day()
	switch bookingType {
	case model.BookingTypeRegular:
		if day > regularBookingLastDay {
			return 0, nil, helper.NewDomainRule(
				"Regular bookings close after the 12th of the month. Use an urgent booking instead.")
		}
		price := rt.Price
		if rt.Type == hostelModel.RoomSharedFullRoom && rt.FullRoomPriceDiscounted != nil {
			price = *rt.FullRoomPriceDiscounted
		}
		return price, nil, nil
	case model.BookingTypeUrgent:
		if day <= regularBookingLastDay {
			return 0, nil, helper.NewDomainRule(
				"Urgent bookings open on the 13th of the month. Use a regular booking instead.")
		}
		if rt.UrgentBookingPrice == nil || *rt.UrgentBookingPrice <= 0 {
			return 0, nil, helper.NewDomainRule(
				"This room type does not offer urgent bookings.")
		}
		leave := firstOfNextMonth(now)
		return *rt.UrgentBookingPrice, &leave, nil
	default:
		return 0, nil, helper.NewValidation("Unknown booking type")
	}
}

// CreateBooking submits a PENDING booking with bank-transfer evidence.
// An ACCEPTED reservation owned by the student may be attached; it is
// consumed (CANCELLED) in the same transaction.
func CreateBooking(db *gorm.DB, userID uuid.UUID, req *dto.CreateBookingRequest) (*model.BookingModel, error) {
	student, err := userService.StudentProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	if student.CurrentHostelID != nil {
		return nil, helper.NewConflict("You already live in a hostel. Leave it before booking another.")
	}

	var hostel hostelModel.HostelModel
	if err := db.First(&hostel, "id = ? AND is_active = true", req.HostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Hostel not found")
		}
		return nil, helper.NewInternal(err)
	}

	rooms := hostel.Rooms()
	rt := rooms.Find(req.RoomType)
	if rt == nil {
		return nil, helper.NewNotFound("Room type not available in this hostel")
	}
	if rt.AvailableRooms <= 0 {
		return nil, helper.NewDomainRule("No rooms of this type are available right now")
	}

	bookingType := req.BookingType
	if bookingType == "" {
		bookingType = model.BookingTypeRegular
	}
	amount, urgentLeave, err := priceForBooking(time.Now(), bookingType, rt)
	if err != nil {
		return nil, err
	}

	var pending int64
	if err := db.Model(&model.BookingModel{}).
		Where("student_id = ? AND status = ?", student.ID, model.BookingPending).
		Count(&pending).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	if pending > 0 {
		return nil, helper.NewConflict("You already have a booking awaiting review")
	}

	booking := model.BookingModel{
		StudentID:        student.ID,
		HostelID:         hostel.ID,
		ReservationID:    req.ReservationID,
		RoomType:         req.RoomType,
		BookingType:      bookingType,
		Status:           model.BookingPending,
		Amount:           amount,
		TransactionImage: req.TransactionImage,
		TransactionDate:  req.TransactionDate,
		TransactionTime:  req.TransactionTime,
		FromAccount:      req.FromAccount,
		ToAccount:        req.ToAccount,
		UrgentLeaveDate:  urgentLeave,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if req.ReservationID != nil {
			var resv reservationModel.ReservationModel
			if err := tx.First(&resv, "id = ? AND student_id = ?", *req.ReservationID, student.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.NewNotFound("Reservation not found")
				}
				return helper.NewInternal(err)
			}
			if resv.Status != reservationModel.ReservationAccepted {
				return helper.NewConflict("Only an accepted reservation can be converted to a booking")
			}
			if resv.HostelID != hostel.ID || resv.RoomType != req.RoomType {
				return helper.NewValidation("Reservation does not match this hostel and room type")
			}
			if err := tx.Model(&resv).Update("status", reservationModel.ReservationCancelled).Error; err != nil {
				return helper.NewInternal(err)
			}
		}
		if err := tx.Create(&booking).Error; err != nil {
			return helper.NewInternal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ownedBooking loads a booking and checks that the calling manager owns
// the hostel it points at.
func ownedBooking(db *gorm.DB, managerUserID, bookingID uuid.UUID) (*model.BookingModel, *hostelModel.HostelModel, error) {
	manager, err := userService.ManagerProfileByUser(db, managerUserID)
	if err != nil {
		return nil, nil, err
	}

	var booking model.BookingModel
	if err := db.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helper.NewNotFound("Booking not found")
		}
		return nil, nil, helper.NewInternal(err)
	}

	var hostel hostelModel.HostelModel
	if err := db.First(&hostel, "id = ?", booking.HostelID).Error; err != nil {
		return nil, nil, helper.NewInternal(err)
	}
	if hostel.ManagerID != manager.ID {
		return nil, nil, helper.NewForbidden("This booking belongs to another manager's hostel")
	}
	return &booking, &hostel, nil
}

// ApproveBooking moves a PENDING booking to APPROVED. Availability is
// re-checked on the live row inside the transaction, so two managers
// racing for the last room cannot both win.
func ApproveBooking(db *gorm.DB, managerUserID, bookingID uuid.UUID) (*model.BookingModel, error) {
	booking, _, err := ownedBooking(db, managerUserID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != model.BookingPending {
		return nil, helper.NewConflict("Only pending bookings can be approved")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var hostel hostelModel.HostelModel
		if err := tx.First(&hostel, "id = ?", booking.HostelID).Error; err != nil {
			return helper.NewInternal(err)
		}
		rt := hostel.Rooms().Find(booking.RoomType)
		if rt == nil {
			return helper.NewNotFound("Room type not available in this hostel")
		}
		if rt.AvailableRooms <= 0 {
			return helper.NewDomainRule("No rooms of this type are available anymore")
		}

		var student userModel.StudentProfileModel
		if err := tx.First(&student, "id = ?", booking.StudentID).Error; err != nil {
			return helper.NewInternal(err)
		}
		if student.CurrentHostelID != nil {
			return helper.NewConflict("Student already lives in a hostel")
		}

		if err := tx.Model(booking).Update("status", model.BookingApproved).Error; err != nil {
			return helper.NewInternal(err)
		}
		if err := hostelService.AdjustRoomAvailability(tx, booking.HostelID, booking.RoomType, -1); err != nil {
			return err
		}
		if err := tx.Model(&student).Update("current_hostel_id", booking.HostelID).Error; err != nil {
			return helper.NewInternal(err)
		}

		// The student moved in, so their other open reservations are moot.
		if err := tx.Model(&reservationModel.ReservationModel{}).
			Where("student_id = ? AND status = ?", student.ID, reservationModel.ReservationPending).
			Update("status", reservationModel.ReservationCancelled).Error; err != nil {
			return helper.NewInternal(err)
		}

		if booking.BookingType == model.BookingTypeRegular {
			if err := feeService.CheckAndResetFeeForNewStudent(tx, booking.HostelID, managerUserID, booking.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	booking.Status = model.BookingApproved
	return booking, nil
}

// DisapproveBooking rejects a PENDING booking. The manager must attach
// refund evidence so the student can verify the transfer came back.
func DisapproveBooking(db *gorm.DB, managerUserID, bookingID uuid.UUID, req *dto.DisapproveBookingRequest) (*model.BookingModel, error) {
	booking, _, err := ownedBooking(db, managerUserID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != model.BookingPending {
		return nil, helper.NewConflict("Only pending bookings can be disapproved")
	}

	updates := map[string]any{
		"status":       model.BookingDisapproved,
		"refund_image": req.RefundImage,
		"refund_date":  req.RefundDate,
		"refund_time":  req.RefundTime,
	}
	if err := db.Model(booking).Updates(updates).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	booking.Status = model.BookingDisapproved
	return booking, nil
}

// recomputeHostelRating rolls reviews up into the hostel's cached
// average. Runs on the same handle as the review insert.
func recomputeHostelRating(tx *gorm.DB, hostelID uuid.UUID) error {
	type agg struct {
		Avg   float64
		Count int64
	}
	var a agg
	if err := tx.Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("hostel_id = ?", hostelID).
		Scan(&a).Error; err != nil {
		return helper.NewInternal(err)
	}
	if err := tx.Model(&hostelModel.HostelModel{}).
		Where("id = ?", hostelID).
		Updates(map[string]any{"average_rating": a.Avg, "review_count": a.Count}).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}

// LeaveHostel ends the student's current stay. The review is mandatory
// and written in the same transaction that frees the room.
func LeaveHostel(db *gorm.DB, userID uuid.UUID, req *dto.LeaveHostelRequest) (*model.BookingModel, error) {
	student, err := userService.StudentProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	if student.CurrentHostelID == nil {
		return nil, helper.NewDomainRule("You are not living in any hostel")
	}

	var booking model.BookingModel
	if err := db.Where("student_id = ? AND hostel_id = ? AND status = ?",
		student.ID, *student.CurrentHostelID, model.BookingApproved).
		Order("created_at DESC").
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("No active booking found for your current hostel")
		}
		return nil, helper.NewInternal(err)
	}

	var existingReviews int64
	if err := db.Model(&model.ReviewModel{}).
		Where("booking_id = ?", booking.ID).
		Count(&existingReviews).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	if existingReviews > 0 {
		return nil, helper.NewConflict("You have already submitted a review for this booking")
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&booking).Updates(map[string]any{
			"status":     model.BookingLeft,
			"leave_date": now,
		}).Error; err != nil {
			return helper.NewInternal(err)
		}
		if err := tx.Model(student).Update("current_hostel_id", nil).Error; err != nil {
			return helper.NewInternal(err)
		}
		if err := hostelService.AdjustRoomAvailability(tx, booking.HostelID, booking.RoomType, +1); err != nil {
			return err
		}

		review := model.ReviewModel{
			BookingID: booking.ID,
			HostelID:  booking.HostelID,
			Rating:    req.Rating,
			Comment:   req.Review,
		}
		if err := tx.Create(&review).Error; err != nil {
			return helper.NewInternal(err)
		}
		return recomputeHostelRating(tx, booking.HostelID)
	})
	if err != nil {
		return nil, err
	}
	booking.Status = model.BookingLeft
	booking.LeaveDate = &now
	return &booking, nil
}

// KickStudent removes an APPROVED student from the manager's hostel,
// freeing the room and leaving an audit trail.
func KickStudent(db *gorm.DB, managerUserID, bookingID uuid.UUID, req *dto.KickStudentRequest) (*model.BookingModel, error) {
	booking, hostel, err := ownedBooking(db, managerUserID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != model.BookingApproved {
		return nil, helper.NewConflict("Only approved bookings can be kicked")
	}

	manager, err := userService.ManagerProfileByUser(db, managerUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Updates(map[string]any{
			"status":             model.BookingLeft,
			"kick_reason":        req.KickReason,
			"kick_by_manager_id": manager.ID,
			"leave_date":         now,
		}).Error; err != nil {
			return helper.NewInternal(err)
		}
		if err := tx.Model(&userModel.StudentProfileModel{}).
			Where("id = ? AND current_hostel_id = ?", booking.StudentID, booking.HostelID).
			Update("current_hostel_id", nil).Error; err != nil {
			return helper.NewInternal(err)
		}
		if err := hostelService.AdjustRoomAvailability(tx, booking.HostelID, booking.RoomType, +1); err != nil {
			return err
		}
		return auditModel.Record(tx, "STUDENT_KICKED", managerUserID.String(), "booking", booking.ID.String(), map[string]any{
			"hostel_id":   hostel.ID,
			"hostel_name": hostel.HostelName,
			"student_id":  booking.StudentID,
			"kick_reason": req.KickReason,
		})
	})
	if err != nil {
		return nil, err
	}
	booking.Status = model.BookingLeft
	booking.KickReason = &req.KickReason
	booking.LeaveDate = &now
	return booking, nil
}

/* ==============================
   Listings
============================== */

func MyBookings(db *gorm.DB, userID uuid.UUID) ([]model.BookingModel, error) {
	student, err := userService.StudentProfileByUser(db, userID)
	if err != nil {
		return nil, err
	}
	var bookings []model.BookingModel
	if err := db.Preload("Hostel").
		Where("student_id = ?", student.ID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return bookings, nil
}

// ManagerBookings lists bookings across all the manager's hostels, or a
// single hostel when hostelID is set.
func ManagerBookings(db *gorm.DB, managerUserID uuid.UUID, hostelID *uuid.UUID, status string) ([]model.BookingModel, error) {
	manager, err := userService.ManagerProfileByUser(db, managerUserID)
	if err != nil {
		return nil, err
	}

	sub := db.Model(&hostelModel.HostelModel{}).
		Select("id").
		Where("manager_id = ?", manager.ID)
	q := db.Preload("Student.User").Preload("Hostel").
		Where("hostel_id IN (?)", sub)
	if hostelID != nil {
		q = q.Where("hostel_id = ?", *hostelID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []model.BookingModel
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return bookings, nil
}

func AllBookings(db *gorm.DB, status string, paging helper.Paging) ([]model.BookingModel, int64, error) {
	q := db.Model(&model.BookingModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}

	var bookings []model.BookingModel
	if err := q.Preload("Student.User").Preload("Hostel").
		Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, helper.NewInternal(err)
	}
	return bookings, total, nil
}

func BookingByID(db *gorm.DB, id uuid.UUID) (*model.BookingModel, error) {
	var booking model.BookingModel
	if err := db.Preload("Student.User").Preload("Hostel").
		First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewNotFound("Booking not found")
		}
		return nil, helper.NewInternal(err)
	}
	return &booking, nil
}

// HostelStudents lists the students currently living in one of the
// manager's hostels, via their APPROVED bookings.
func HostelStudents(db *gorm.DB, managerUserID, hostelID uuid.UUID) ([]model.BookingModel, error) {
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

	var bookings []model.BookingModel
	if err := db.Preload("Student.User").
		Where("hostel_id = ? AND status = ?", hostelID, model.BookingApproved).
		Order("created_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return bookings, nil
}

// HostelReviews returns all reviews left for a hostel, newest first.
// The hostel detail endpoint attaches them to its payload.
func HostelReviews(db *gorm.DB, hostelID uuid.UUID) ([]model.ReviewModel, error) {
	var reviews []model.ReviewModel
	if err := db.Preload("Booking.Student").
		Where("hostel_id = ?", hostelID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return reviews, nil
}

// RandomReviews returns a small random sample of reviews for the
// public landing page.
func RandomReviews(db *gorm.DB, limit int) ([]model.ReviewModel, error) {
	if limit <= 0 || limit > 20 {
		limit = 6
	}
	var reviews []model.ReviewModel
	if err := db.Preload("Booking.Student").Preload("Booking.Hostel").
		Order("RANDOM()").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	return reviews, nil
}
