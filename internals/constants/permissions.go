package constants

// Permission set yang dikenal sistem. Disimpan di kolom admin_permissions
// (JSONB array of string); AdminAuth menerima satu atau lebih di antaranya.
const (
	PermManageRoutines    = "manage_routines"
	PermManageBranches    = "manage_branches"
	PermManageBatches     = "manage_batches"
	PermManageSubjects    = "manage_subjects"
	PermManageTeachers    = "manage_teachers"
	PermManageAdmins      = "manage_admins"
	PermManageCourses     = "manage_courses"
	PermManageOrders      = "manage_orders"
	PermManageEnrollments = "manage_enrollments"
)

func IsKnownPermission(p string) bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

var AllPermissions = []string{
	PermManageRoutines,
	PermManageBranches,
	PermManageBatches,
	PermManageSubjects,
	PermManageTeachers,
	PermManageAdmins,
	PermManageCourses,
	PermManageOrders,
	PermManageEnrollments,
}
