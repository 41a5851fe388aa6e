package admin

import (
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ADMIN ACCOUNT DTOs
// ========================================

type CreateAdminRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

func (r *CreateAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	for _, p := range r.Permissions {
		if !IsKnownPermission(Permission(p)) {
			errs = append(errs, validator.ValidationError{
				Field:   "permissions",
				Message: "unknown permission: " + p,
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRoleRequest struct {
	Role        string    `json:"role"`
	Permissions *[]string `json:"permissions"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if r.Permissions != nil {
		for _, p := range *r.Permissions {
			if !IsKnownPermission(Permission(p)) {
				errs = append(errs, validator.ValidationError{
					Field:   "permissions",
					Message: "unknown permission: " + p,
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdminResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

func ToAdminResponse(a Admin) AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Role:        string(a.Role),
		Permissions: PermissionStrings(a.Permissions),
	}
}

