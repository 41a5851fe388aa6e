package response

import (
	"errors"
	"net/http"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/auth"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/department"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/employee"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound), errors.Is(err, auth.ErrRefreshTokenCookieEmpty):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrGoogleLoginDisabled):
		BadRequest(w, "Google login is not configured", nil)
	case errors.Is(err, auth.ErrGoogleEmailNotVerified):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrGoogleAccessDeniedByUser):
		Unauthorized(w, "Google access denied")
	case errors.Is(err, auth.ErrStateCookieEmpty),
		errors.Is(err, auth.ErrStateParamEmpty),
		errors.Is(err, auth.ErrStateMismatch),
		errors.Is(err, auth.ErrCodeValueEmpty):
		BadRequest(w, "Invalid OAuth callback", nil)

	// Admin domain errors
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, admin.ErrAdminEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, admin.ErrOwnerRoleNotAssignable):
		BadRequest(w, "The owner role cannot be assigned", nil)
	case errors.Is(err, admin.ErrOwnerAccountProtected):
		Forbidden(w, "The primary owner account cannot be modified or deleted")
	case errors.Is(err, admin.ErrOwnerAccessRequired):
		Forbidden(w, "Owner access required")
	case errors.Is(err, admin.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, admin.ErrUnknownRole):
		BadRequest(w, "Unknown role", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNationalIDExists):
		Conflict(w, "National ID already registered")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee id", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		Conflict(w, "Department already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "Punch record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
