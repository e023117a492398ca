package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/constants"
	"hostelshub_backend/internals/features/reports/controller"
	"hostelshub_backend/internals/middlewares/auth"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewReportHandler(db)

	reports := api.Group("/reports", auth.AuthMiddleware(db), auth.NotTerminated(db))

	studentOnly := auth.OnlyRoles(constants.RoleErrorStudent("reports"), constants.RoleStudent)
	staffOnly := auth.OnlyRoles(constants.RoleErrorStaff("report arbitration"), constants.StaffRoles...)

	reports.Post("/", studentOnly, h.CreateReport)
	reports.Get("/my", studentOnly, h.MyReports)

	reports.Get("/", staffOnly, h.AllReports)
	reports.Patch("/:id/resolve", staffOnly, h.ResolveReport)
}
