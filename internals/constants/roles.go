package constants

import "fmt"

// Role error message templates
const (
	ErrOnlyStudentsCanAccess = "Only students may access %s."
	ErrOnlyManagersCanAccess = "Only managers may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
	ErrOnlyStaffCanAccess    = "Only admins or sub-admins may access %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Role names
// ==========================
const (
	RoleStudent  = "STUDENT"
	RoleManager  = "MANAGER"
	RoleAdmin    = "ADMIN"
	RoleSubAdmin = "SUBADMIN"
)

var (
	AllRoles = []string{
		RoleStudent,
		RoleManager,
		RoleAdmin,
		RoleSubAdmin,
	}

	// Roles allowed to review verifications, fees and reports.
	StaffRoles = []string{
		RoleAdmin,
		RoleSubAdmin,
	}
)
