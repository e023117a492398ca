package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/chat/dto"
	"hostelshub_backend/internals/features/chat/service"
	helper "hostelshub_backend/internals/helpers"
)

var validate = validator.New()

type ChatHandler struct {
	DB *gorm.DB
}

func NewChatHandler(db *gorm.DB) *ChatHandler {
	return &ChatHandler{DB: db}
}

// POST /api/chat/conversations
func (h *ChatHandler) StartConversation(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.StartConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	conv, err := service.StartConversation(h.DB, userID, req.WithUserID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Conversation", conv)
}

// GET /api/chat/conversations
func (h *ChatHandler) MyConversations(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	conversations, err := service.MyConversations(h.DB, userID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Conversations", conversations)
}

// GET /api/chat/conversations/:id/messages
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	conversationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid conversation id")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	messages, total, err := service.Messages(h.DB, userID, conversationID, paging)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessList(c, messages, helper.BuildPagination(total, paging))
}

// POST /api/chat/conversations/:id/messages
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	conversationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid conversation id")
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	msg, err := service.SendMessage(h.DB, userID, conversationID, req.Body)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Created(c, "Message sent", msg)
}
