package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelshub_backend/internals/constants"
	"hostelshub_backend/internals/features/users/user/controller"
	"hostelshub_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	h := controller.NewUserHandler(db)

	users := api.Group("/users", auth.AuthMiddleware(db), auth.NotTerminated(db))

	studentOnly := auth.OnlyRoles(constants.RoleErrorStudent("student profiles"), constants.RoleStudent)
	managerOnly := auth.OnlyRoles(constants.RoleErrorManager("manager profiles"), constants.RoleManager)
	staffOnly := auth.OnlyRoles(constants.RoleErrorStaff("user administration"), constants.StaffRoles...)
	// termination stays with full admins
	adminOnly := auth.OnlyRoles(constants.RoleErrorAdmin("account termination"), constants.RoleAdmin)

	users.Get("/me", h.Me)
	users.Delete("/me", h.DeleteMyAccount)

	users.Post("/self-verify", studentOnly, h.SelfVerify)
	users.Patch("/student-profile", studentOnly, h.UpdateStudentProfile)
	users.Patch("/manager-profile", managerOnly, h.UpdateManagerProfile)

	users.Get("/", staffOnly, h.AllUsers)
	users.Patch("/:id/terminate", adminOnly, h.TerminateUser)
}
