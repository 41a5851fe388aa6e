package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/handler/http/response"
)

// RequireOwner requires the owner role
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, admin.ErrOwnerAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, admin.ErrOwnerAccessRequired)
			return
		}

		if role != string(admin.RoleOwner) {
			response.HandleError(w, admin.ErrOwnerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePermission checks the token's permission list. The owner role passes
// unconditionally; everyone else needs the named permission granted.
func RequirePermission(permission admin.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			role, ok := claims["role"].(string)
			if ok && role == string(admin.RoleOwner) {
				next.ServeHTTP(w, r)
				return
			}

			if !claimsHavePermission(claims, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// claimsHavePermission scans the "permissions" claim, which decodes from JSON
// as []interface{} of strings.
func claimsHavePermission(claims map[string]interface{}, permission admin.Permission) bool {
	raw, ok := claims["permissions"].([]interface{})
	if !ok {
		return false
	}
	for _, item := range raw {
		if s, ok := item.(string); ok && s == string(permission) {
			return true
		}
	}
	return false
}
