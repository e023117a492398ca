package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/constants"
	"hostelshub_backend/internals/features/bookings/controller"
	"hostelshub_backend/internals/middlewares/auth"
)

func BookingRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewBookingHandler(db)

	bookings := api.Group("/bookings", auth.AuthMiddleware(db), auth.NotTerminated(db))

	studentOnly := auth.OnlyRoles(constants.RoleErrorStudent("bookings"), constants.RoleStudent)
	managerOnly := auth.OnlyRoles(constants.RoleErrorManager("booking review"), constants.RoleManager)
	staffOnly := auth.OnlyRoles(constants.RoleErrorStaff("booking oversight"), constants.StaffRoles...)

	bookings.Post("/", studentOnly, h.CreateBooking)
	bookings.Post("/upload-evidence", studentOnly, h.UploadEvidence)
	bookings.Post("/leave", studentOnly, h.LeaveHostel)
	bookings.Get("/my", studentOnly, h.MyBookings)

	bookings.Get("/manager", managerOnly, h.ManagerBookings)
	bookings.Patch("/:id/approve", managerOnly, h.ApproveBooking)
	bookings.Patch("/:id/disapprove", managerOnly, h.DisapproveBooking)
	bookings.Patch("/:id/kick", managerOnly, h.KickStudent)

	bookings.Get("/", staffOnly, h.AllBookings)
	bookings.Get("/:id", staffOnly, h.BookingByID)
}
