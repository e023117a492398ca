package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/users/auth/controller"
	"hostelshub_backend/internals/middlewares"
	"hostelshub_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewAuthHandler(db)

	authGroup := api.Group("/auth")

	authGroup.Post("/register", middlewares.RegisterRateLimiter(), h.Register)
	authGroup.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	authGroup.Post("/login/google", middlewares.LoginRateLimiter(), h.LoginGoogle)
	authGroup.Post("/refresh", h.Refresh)
	authGroup.Post("/logout", h.Logout)

	authGroup.Patch("/change-password", auth.AuthMiddleware(db), auth.NotTerminated(db), h.ChangePassword)
}
