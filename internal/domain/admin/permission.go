package admin

type Permission string

const (
	// Employee Management
	PermissionEmployeeCreate Permission = "employee.create"
	PermissionEmployeeUpdate Permission = "employee.update"
	PermissionEmployeeDelete Permission = "employee.delete"

	// Attendance Management
	PermissionAttendanceView    Permission = "attendance.view"
	PermissionAttendanceManual  Permission = "attendance.manual"
	PermissionAttendanceAnalyze Permission = "attendance.analyze"

	// Reports
	PermissionReportsExport Permission = "reports.export"

	// User Management
	PermissionUserManage Permission = "user.manage"

	// Department Management
	PermissionDepartmentManage Permission = "department.manage"
)

// AllPermissions lists every known permission.
var AllPermissions = []Permission{
	PermissionEmployeeCreate,
	PermissionEmployeeUpdate,
	PermissionEmployeeDelete,
	PermissionAttendanceView,
	PermissionAttendanceManual,
	PermissionAttendanceAnalyze,
	PermissionReportsExport,
	PermissionUserManage,
	PermissionDepartmentManage,
}

// DefaultPermissions returns the permission set granted to a freshly created
// admin of the given role when no explicit list is assigned. Owners get
// everything; regular admins get nothing until the owner grants it.
func DefaultPermissions(role Role) []Permission {
	if role == RoleOwner {
		perms := make([]Permission, len(AllPermissions))
		copy(perms, AllPermissions)
		return perms
	}
	return []Permission{}
}

// IsKnownPermission reports whether p is part of the permission vocabulary.
func IsKnownPermission(p Permission) bool {
	for _, known := range AllPermissions {
		if known == p {
			return true
		}
	}
	return false
}

// PermissionStrings converts a permission list to plain strings, as carried
// in JWT claims and stored in the database.
func PermissionStrings(perms []Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
