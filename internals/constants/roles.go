package constants

import "fmt"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrAdminInactive       = "Admin account is inactive"
	ErrAdminsOnly          = "Access denied. Admins only"
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var AllRoles = []string{
	RoleUser,
	RoleAdmin,
}
