package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/constants"
	"hostelshub_backend/internals/features/fees/controller"
	"hostelshub_backend/internals/middlewares/auth"
)

func FeeRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewFeeHandler(db)

	fees := api.Group("/fees", auth.AuthMiddleware(db), auth.NotTerminated(db))

	managerOnly := auth.OnlyRoles(constants.RoleErrorManager("fee submission"), constants.RoleManager)
	staffOnly := auth.OnlyRoles(constants.RoleErrorStaff("fee review"), constants.StaffRoles...)

	fees.Post("/", managerOnly, h.SubmitFee)
	fees.Post("/upload-proof", managerOnly, h.UploadProof)
	fees.Get("/my", managerOnly, h.MyFees)
	fees.Get("/pending-summary", managerOnly, h.PendingSummary)

	fees.Get("/", staffOnly, h.AllFees)
	fees.Patch("/:id/review", staffOnly, h.ReviewFee)
}
