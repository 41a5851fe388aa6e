package admin

import "time"

type Role string

const (
	RoleOwner Role = "owner" // Primary account - full access, cannot be deleted or demoted
	RoleAdmin Role = "admin" // Regular back-office account, permissions assigned per user
)

type Admin struct {
	ID              int64
	Name            string
	Email           string
	PasswordHash    string
	Role            Role
	Permissions     []Permission
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOwner checks if the admin holds the owner role
func (a *Admin) IsOwner() bool {
	return a.Role == RoleOwner
}

// HasPermission checks the admin's own permission list
func (a *Admin) HasPermission(permission Permission) bool {
	for _, p := range a.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
