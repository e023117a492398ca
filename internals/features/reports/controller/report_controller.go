package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/reports/dto"
	"hostelshub_backend/internals/features/reports/service"
	helper "hostelshub_backend/internals/helpers"
)

var validate = validator.New()

type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{DB: db}
}

// POST /api/reports (student)
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	report, err := service.CreateReport(h.DB, userID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Created(c, "Report filed", report)
}

// GET /api/reports/my (student)
func (h *ReportHandler) MyReports(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	reports, err := service.MyReports(h.DB, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "My reports", reports)
}

// GET /api/reports?status=&page=&per_page= (admin)
func (h *ReportHandler) AllReports(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	reports, total, err := service.AllReports(h.DB, c.Query("status"), paging)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessList(c, reports, helper.BuildPagination(total, paging))
}

// PATCH /api/reports/:id/resolve (admin)
func (h *ReportHandler) ResolveReport(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid report id")
	}

	var req dto.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	report, err := service.ResolveReport(h.DB, userID, reportID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Report updated", report)
}
