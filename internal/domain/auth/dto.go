package auth

import (
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SessionTrackingRequest carries client metadata stored with refresh tokens.
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}

type TokenResponse struct {
	AccessToken           string              `json:"access_token"`
	AccessTokenExpiresIn  int64               `json:"access_token_expires_in"`
	RefreshToken          string              `json:"-"`
	RefreshTokenExpiresIn int64               `json:"-"`
	Admin                 admin.AdminResponse `json:"admin"`
}
