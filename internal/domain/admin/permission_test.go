package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPermissions_Owner(t *testing.T) {
	perms := DefaultPermissions(RoleOwner)
	assert.ElementsMatch(t, AllPermissions, perms)

	// Mutating the returned slice must not leak into AllPermissions.
	perms[0] = Permission("tampered")
	assert.Equal(t, PermissionEmployeeCreate, AllPermissions[0])
}

func TestDefaultPermissions_Admin(t *testing.T) {
	assert.Empty(t, DefaultPermissions(RoleAdmin))
}

func TestIsKnownPermission(t *testing.T) {
	for _, p := range AllPermissions {
		assert.True(t, IsKnownPermission(p), "expected %s to be known", p)
	}
	assert.False(t, IsKnownPermission(Permission("payroll.run")))
	assert.False(t, IsKnownPermission(Permission("")))
}

func TestAdminHasPermission(t *testing.T) {
	a := Admin{
		Role:        RoleAdmin,
		Permissions: []Permission{PermissionAttendanceView, PermissionAttendanceAnalyze},
	}
	assert.True(t, a.HasPermission(PermissionAttendanceAnalyze))
	assert.False(t, a.HasPermission(PermissionUserManage))
	assert.False(t, a.IsOwner())
}
