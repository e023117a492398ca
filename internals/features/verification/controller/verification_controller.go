package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/verification/dto"
	"hostelshub_backend/internals/features/verification/service"
	helper "hostelshub_backend/internals/helpers"
	ossHelper "hostelshub_backend/internals/helpers/oss"
)

var validate = validator.New()

type VerificationHandler struct {
	DB *gorm.DB
}

func NewVerificationHandler(db *gorm.DB) *VerificationHandler {
	return &VerificationHandler{DB: db}
}

// POST /api/verifications (manager)
func (h *VerificationHandler) SubmitVerification(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SubmitVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	request, err := service.SubmitVerification(h.DB, userID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Created(c, "Verification request submitted", request)
}

// POST /api/verifications/upload-images (manager, multipart field "images")
func (h *VerificationHandler) UploadBuildingImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Multipart form required")
	}
	urls, err := ossHelper.UploadImages(form, "images", "verifications/buildings")
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Images uploaded", fiber.Map{"urls": urls})
}

// GET /api/verifications/my (manager)
func (h *VerificationHandler) MyVerification(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	request, err := service.MyVerification(h.DB, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Verification request", request)
}

// GET /api/verifications?status=&page=&per_page= (admin)
func (h *VerificationHandler) AllVerifications(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	requests, total, err := service.AllVerifications(h.DB, c.Query("status"), paging)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessList(c, requests, helper.BuildPagination(total, paging))
}

// GET /api/verifications/:id (admin)
func (h *VerificationHandler) VerificationByID(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request id")
	}
	request, err := service.VerificationByID(h.DB, requestID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Verification request", request)
}

// PATCH /api/verifications/:id/review (admin)
func (h *VerificationHandler) ReviewVerification(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request id")
	}

	var req dto.ReviewVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	request, err := service.ReviewVerification(h.DB, userID, requestID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Verification reviewed", request)
}
