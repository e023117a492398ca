package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/reservations/dto"
	"hostelshub_backend/internals/features/reservations/service"
	helper "hostelshub_backend/internals/helpers"
)

var validate = validator.New()

type ReservationHandler struct {
	DB *gorm.DB
}

func NewReservationHandler(db *gorm.DB) *ReservationHandler {
	return &ReservationHandler{DB: db}
}

// POST /api/reservations (student)
func (h *ReservationHandler) CreateReservation(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resv, err := service.CreateReservation(h.DB, userID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Created(c, "Reservation submitted", resv)
}

// PATCH /api/reservations/:id/cancel (student)
func (h *ReservationHandler) CancelReservation(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	reservationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid reservation id")
	}

	if err := service.CancelReservation(h.DB, userID, reservationID); err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Reservation cancelled", nil)
}

// GET /api/reservations/my (student)
func (h *ReservationHandler) MyReservations(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	reservations, err := service.MyReservations(h.DB, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "My reservations", reservations)
}

// GET /api/reservations/hostel/:hostelId?status= (manager)
func (h *ReservationHandler) HostelReservations(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	hostelID, err := uuid.Parse(c.Params("hostelId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid hostel id")
	}

	reservations, err := service.HostelReservations(h.DB, userID, hostelID, c.Query("status"))
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Hostel reservations", reservations)
}

// PATCH /api/reservations/:id/review (manager)
func (h *ReservationHandler) ReviewReservation(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	reservationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid reservation id")
	}

	var req dto.ReviewReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resv, err := service.ReviewReservation(h.DB, userID, reservationID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Reservation reviewed", resv)
}
