package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/constants"
	"hostelshub_backend/internals/features/verification/controller"
	"hostelshub_backend/internals/middlewares/auth"
)

func VerificationRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewVerificationHandler(db)

	verifications := api.Group("/verifications", auth.AuthMiddleware(db), auth.NotTerminated(db))

	managerOnly := auth.OnlyRoles(constants.RoleErrorManager("verification"), constants.RoleManager)
	staffOnly := auth.OnlyRoles(constants.RoleErrorStaff("verification review"), constants.StaffRoles...)

	verifications.Post("/", managerOnly, h.SubmitVerification)
	verifications.Post("/upload-images", managerOnly, h.UploadBuildingImages)
	verifications.Get("/my", managerOnly, h.MyVerification)

	verifications.Get("/", staffOnly, h.AllVerifications)
	verifications.Get("/:id", staffOnly, h.VerificationByID)
	verifications.Patch("/:id/review", staffOnly, h.ReviewVerification)
}
