package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/users/auth/dto"
	"hostelshub_backend/internals/features/users/auth/service"
	helper "hostelshub_backend/internals/helpers"
)

var validate = validator.New()

type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Register(h.DB, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Created(c, "Account created", user)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, tokens, err := service.Login(h.DB, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	setAuthCookies(c, tokens)
	return helper.Success(c, "Logged in", fiber.Map{"user": user, "tokens": tokens})
}

// POST /api/auth/login/google
func (h *AuthHandler) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, tokens, err := service.LoginGoogle(h.DB, &req)
	if err != nil {
		return helper.FromError(c, err)
	}
	setAuthCookies(c, tokens)
	return helper.Success(c, "Logged in with Google", fiber.Map{"user": user, "tokens": tokens})
}

// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		// cookie fallback for browser clients
		req.RefreshToken = c.Cookies("refresh_token")
	}
	if req.RefreshToken == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Refresh token required")
	}

	user, tokens, err := service.Refresh(h.DB, req.RefreshToken)
	if err != nil {
		return helper.FromError(c, err)
	}
	setAuthCookies(c, tokens)
	return helper.Success(c, "Token refreshed", fiber.Map{"user": user, "tokens": tokens})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	raw := c.Cookies("refresh_token")
	if raw == "" {
		var req dto.RefreshRequest
		if err := c.BodyParser(&req); err == nil {
			raw = req.RefreshToken
		}
	}
	if raw != "" {
		if err := service.RevokeRefreshToken(h.DB, raw); err != nil {
			return helper.FromError(c, err)
		}
	}
	clearAuthCookies(c)
	return helper.Success(c, "Logged out", nil)
}

// PATCH /api/auth/change-password (authenticated)
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.ChangePassword(h.DB, userID, &req); err != nil {
		return helper.FromError(c, err)
	}
	clearAuthCookies(c)
	return helper.Success(c, "Password changed. Please log in again.", nil)
}

func setAuthCookies(c *fiber.Ctx, tokens *dto.AuthTokens) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
		})
	}
}
