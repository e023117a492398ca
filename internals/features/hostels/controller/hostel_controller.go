package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingService "hostelshub_backend/internals/features/bookings/service"
	"hostelshub_backend/internals/features/hostels/dto"
	"hostelshub_backend/internals/features/hostels/service"
	helper "hostelshub_backend/internals/helpers"
	ossHelper "hostelshub_backend/internals/helpers/oss"
)

var validate = validator.New()

type HostelHandler struct {
	DB *gorm.DB
}

func NewHostelHandler(db *gorm.DB) *HostelHandler {
	return &HostelHandler{DB: db}
}

// POST /api/hostels
func (h *HostelHandler) CreateHostel(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateHostelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hostel, err := service.CreateHostel(h.DB, userID, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Created(c, "Hostel created", hostel)
}

// PUT /api/hostels/:id
func (h *HostelHandler) UpdateHostel(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	hostelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid hostel id")
	}

	var req dto.UpdateHostelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hostel, err := service.UpdateHostel(h.DB, userID, hostelID, req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Hostel updated", hostel)
}

// DELETE /api/hostels/:id
func (h *HostelHandler) DeleteHostel(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	hostelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid hostel id")
	}

	if err := service.DeleteHostel(h.DB, userID, hostelID); err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Hostel deleted", nil)
}

// GET /api/hostels/my
func (h *HostelHandler) MyHostels(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	hostels, err := service.MyHostels(h.DB, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "My hostels", hostels)
}

// GET /api/hostels (public search)
func (h *HostelHandler) SearchHostels(c *fiber.Ctx) error {
	var q dto.SearchHostelsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := validate.Struct(q); err != nil {
		return helper.ValidationError(c, err)
	}

	hostels, err := service.SearchHostels(h.DB, q)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Hostels", hostels)
}

// GET /api/hostels/all (admin)
func (h *HostelHandler) AllHostels(c *fiber.Ctx) error {
	hostels, err := service.AllHostels(h.DB)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "All hostels", hostels)
}

// GET /api/hostels/:id (public detail)
func (h *HostelHandler) HostelByID(c *fiber.Ctx) error {
	hostelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid hostel id")
	}
	hostel, err := service.HostelByID(h.DB, hostelID)
	if err != nil {
		return helper.FromError(c, err)
	}
	reviews, err := bookingService.HostelReviews(h.DB, hostelID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Hostel", fiber.Map{
		"hostel":  hostel,
		"reviews": reviews,
	})
}

// GET /api/hostels/:id/students (manager)
func (h *HostelHandler) HostelStudents(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	hostelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid hostel id")
	}

	students, err := bookingService.HostelStudents(h.DB, userID, hostelID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Hostel students", students)
}

// GET /api/hostels/reviews/random (public)
func (h *HostelHandler) RandomReviews(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 6)
	reviews, err := bookingService.RandomReviews(h.DB, limit)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Reviews", reviews)
}

// POST /api/hostels/upload-images (manager, multipart field "images")
func (h *HostelHandler) UploadRoomImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Multipart form required")
	}
	urls, err := ossHelper.UploadImages(form, "images", "hostels/rooms")
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Images uploaded", fiber.Map{"urls": urls})
}
