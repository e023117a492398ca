package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/chat/controller"
	"hostelshub_backend/internals/middlewares/auth"
)

func ChatRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewChatHandler(db)

	chat := api.Group("/chat", auth.AuthMiddleware(db), auth.NotTerminated(db))

	chat.Post("/conversations", h.StartConversation)
	chat.Get("/conversations", h.MyConversations)
	chat.Get("/conversations/:id/messages", h.Messages)
	chat.Post("/conversations/:id/messages", h.SendMessage)
}
