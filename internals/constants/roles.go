package constants

import "fmt"

// ==========================
// ✅ Role Names
// ==========================
const (
	RoleUser    = "user"
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess = "❌ Hanya owner yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleStudent,
		RoleTeacher,
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
