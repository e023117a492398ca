package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/fees/dto"
	"hostelshub_backend/internals/features/fees/service"
	helper "hostelshub_backend/internals/helpers"
	ossHelper "hostelshub_backend/internals/helpers/oss"
)

var validate = validator.New()

type FeeHandler struct {
	DB *gorm.DB
}

func NewFeeHandler(db *gorm.DB) *FeeHandler {
	return &FeeHandler{DB: db}
}

// POST /api/fees (manager)
func (h *FeeHandler) SubmitFee(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SubmitFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fee, err := service.SubmitMonthlyFee(h.DB, userID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Created(c, "Fee submitted", fee)
}

// POST /api/fees/upload-proof (manager, multipart field "image")
func (h *FeeHandler) UploadProof(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Image file required")
	}
	url, err := ossHelper.UploadImage("fees/proofs", fh)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Proof uploaded", fiber.Map{"url": url})
}

// GET /api/fees/my (manager)
func (h *FeeHandler) MyFees(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	fees, err := service.MyFees(h.DB, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "My fees", fees)
}

// GET /api/fees/pending-summary (manager)
func (h *FeeHandler) PendingSummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	due, err := service.PendingFeeSummary(h.DB, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Fees due this month", due)
}

// GET /api/fees?status=&page=&per_page= (admin)
func (h *FeeHandler) AllFees(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	fees, total, err := service.AllFees(h.DB, c.Query("status"), paging)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessList(c, fees, helper.BuildPagination(total, paging))
}

// PATCH /api/fees/:id/review (admin)
func (h *FeeHandler) ReviewFee(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	feeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid fee id")
	}

	var req dto.ReviewFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fee, err := service.ReviewFee(h.DB, userID, feeID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Fee reviewed", fee)
}
