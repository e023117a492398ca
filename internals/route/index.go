package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingRoute "hostelshub_backend/internals/features/bookings/route"
	chatRoute "hostelshub_backend/internals/features/chat/route"
	feeRoute "hostelshub_backend/internals/features/fees/route"
	hostelRoute "hostelshub_backend/internals/features/hostels/route"
	reportRoute "hostelshub_backend/internals/features/reports/route"
	reservationRoute "hostelshub_backend/internals/features/reservations/route"
	authRoute "hostelshub_backend/internals/features/users/auth/route"
	userRoute "hostelshub_backend/internals/features/users/user/route"
	verificationRoute "hostelshub_backend/internals/features/verification/route"
	database "hostelshub_backend/internals/databases"
	helper "hostelshub_backend/internals/helpers"
)

var startedAt = time.Now()

// SetupRoutes mounts every feature under /api plus the health probe and
// the JSON 404 fallback. The fallback must be registered last.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		if err := database.Ping(); err != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status": status,
			"uptime": time.Since(startedAt).String(),
		})
	})

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
	verificationRoute.VerificationRoutes(api, db)
	hostelRoute.HostelRoutes(api, db)
	reservationRoute.ReservationRoutes(api, db)
	bookingRoute.BookingRoutes(api, db)
	feeRoute.FeeRoutes(api, db)
	reportRoute.ReportRoutes(api, db)
	chatRoute.ChatRoutes(api, db)

	app.Use(func(c *fiber.Ctx) error {
		return helper.Error(c, fiber.StatusNotFound, "Route not found")
	})
}
