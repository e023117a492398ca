package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/constants"
	"hostelshub_backend/internals/features/hostels/controller"
	"hostelshub_backend/internals/middlewares/auth"
)

func HostelRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewHostelHandler(db)

	hostels := api.Group("/hostels")

	// Public browsing.
	hostels.Get("/", h.SearchHostels)
	hostels.Get("/reviews/random", h.RandomReviews)

	protected := hostels.Group("/", auth.AuthMiddleware(db), auth.NotTerminated(db))

	managerOnly := auth.OnlyRoles(constants.RoleErrorManager("manage hostels"), constants.RoleManager)
	protected.Post("/", managerOnly, h.CreateHostel)
	protected.Post("/upload-images", managerOnly, h.UploadRoomImages)
	protected.Get("/my", managerOnly, h.MyHostels)
	protected.Get("/all",
		auth.OnlyRoles(constants.RoleErrorStaff("view all hostels"), constants.RoleAdmin, constants.RoleSubAdmin),
		h.AllHostels)
	protected.Get("/:id/students", managerOnly, h.HostelStudents)
	protected.Put("/:id", managerOnly, h.UpdateHostel)
	protected.Delete("/:id", managerOnly, h.DeleteHostel)

	// Keep the catch-all detail route last so it does not shadow /my or /all.
	hostels.Get("/:id", h.HostelByID)
}
