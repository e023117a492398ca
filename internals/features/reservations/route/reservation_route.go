package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/constants"
	"hostelshub_backend/internals/features/reservations/controller"
	"hostelshub_backend/internals/middlewares/auth"
)

func ReservationRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewReservationHandler(db)

	reservations := api.Group("/reservations", auth.AuthMiddleware(db), auth.NotTerminated(db))

	studentOnly := auth.OnlyRoles(constants.RoleErrorStudent("reservations"), constants.RoleStudent)
	managerOnly := auth.OnlyRoles(constants.RoleErrorManager("reservation review"), constants.RoleManager)

	reservations.Post("/", studentOnly, h.CreateReservation)
	reservations.Get("/my", studentOnly, h.MyReservations)
	reservations.Patch("/:id/cancel", studentOnly, h.CancelReservation)

	reservations.Get("/hostel/:hostelId", managerOnly, h.HostelReservations)
	reservations.Patch("/:id/review", managerOnly, h.ReviewReservation)
}
