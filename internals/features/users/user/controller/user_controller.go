package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/users/user/dto"
	"hostelshub_backend/internals/features/users/user/service"
	helper "hostelshub_backend/internals/helpers"
)

var validate = validator.New()

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// GET /api/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	me, err := service.Me(h.DB, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Profile", me)
}

// POST /api/users/self-verify (student)
func (h *UserHandler) SelfVerify(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SelfVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	profile, err := service.SelfVerify(h.DB, userID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Profile verified", profile)
}

// PATCH /api/users/student-profile (student)
func (h *UserHandler) UpdateStudentProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateStudentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	profile, err := service.UpdateStudentProfile(h.DB, userID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Profile updated", profile)
}

// PATCH /api/users/manager-profile (manager)
func (h *UserHandler) UpdateManagerProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateManagerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	profile, err := service.UpdateManagerProfile(h.DB, userID, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Profile updated", profile)
}

// GET /api/users?role=&page=&per_page= (admin)
func (h *UserHandler) AllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	users, total, err := service.AllUsers(h.DB, c.Query("role"), paging)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessList(c, users, helper.BuildPagination(total, paging))
}

// PATCH /api/users/:id/terminate (admin only, not subadmin)
func (h *UserHandler) TerminateUser(c *fiber.Ctx) error {
	adminID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.TerminateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.TerminateUser(h.DB, adminID, targetID, req.Reason); err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Account terminated", nil)
}

// DELETE /api/users/me
func (h *UserHandler) DeleteMyAccount(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := service.DeleteMyAccount(h.DB, userID); err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Account deleted", nil)
}
