package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/bookings/dto"
	"hostelshub_backend/internals/features/bookings/service"
	helper "hostelshub_backend/internals/helpers"
	ossHelper "hostelshub_backend/internals/helpers/oss"
)

var validate = validator.New()

type BookingHandler struct {
	DB *gorm.DB
}

func NewBookingHandler(db *gorm.DB) *BookingHandler {
	return &BookingHandler{DB: db}
}

// POST /api/bookings (student)
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	booking, err := service.CreateBooking(h.DB, userID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Created(c, "Booking submitted", booking)
}

// POST /api/bookings/upload-evidence (multipart field "image")
func (h *BookingHandler) UploadEvidence(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Image file required")
	}
	url, err := ossHelper.UploadImage("bookings/evidence", fh)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Evidence uploaded", fiber.Map{"url": url})
}

// PATCH /api/bookings/:id/approve (manager)
func (h *BookingHandler) ApproveBooking(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	booking, err := service.ApproveBooking(h.DB, userID, bookingID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Booking approved", booking)
}

// PATCH /api/bookings/:id/disapprove (manager)
func (h *BookingHandler) DisapproveBooking(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	var req dto.DisapproveBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	booking, err := service.DisapproveBooking(h.DB, userID, bookingID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Booking disapproved", booking)
}

// POST /api/bookings/leave (student)
func (h *BookingHandler) LeaveHostel(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.LeaveHostelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	booking, err := service.LeaveHostel(h.DB, userID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "You have left the hostel", booking)
}

// PATCH /api/bookings/:id/kick (manager)
func (h *BookingHandler) KickStudent(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid booking id")
	}

	var req dto.KickStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	booking, err := service.KickStudent(h.DB, userID, bookingID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Student removed from hostel", booking)
}

// GET /api/bookings/my (student)
func (h *BookingHandler) MyBookings(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	bookings, err := service.MyBookings(h.DB, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "My bookings", bookings)
}

// GET /api/bookings/manager?hostel_id=&status= (manager)
func (h *BookingHandler) ManagerBookings(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var hostelID *uuid.UUID
	if raw := c.Query("hostel_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid hostel id")
		}
		hostelID = &id
	}

	bookings, err := service.ManagerBookings(h.DB, userID, hostelID, c.Query("status"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Hostel bookings", bookings)
}

// GET /api/bookings?status=&page=&per_page= (admin)
func (h *BookingHandler) AllBookings(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	bookings, total, err := service.AllBookings(h.DB, c.Query("status"), paging)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessList(c, bookings, helper.BuildPagination(total, paging))
}

// GET /api/bookings/:id
func (h *BookingHandler) BookingByID(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid booking id")
	}
	booking, err := service.BookingByID(h.DB, bookingID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Booking", booking)
}
