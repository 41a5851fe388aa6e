package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrInvalidToken               = errors.New("invalid token")
	ErrTokenExpired               = errors.New("token expired")
	ErrRefreshTokenRevoked        = errors.New("refresh token revoked")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")
	ErrGoogleLoginDisabled        = errors.New("google login is not configured")
	ErrGoogleEmailNotVerified     = errors.New("google account email is not verified")
	ErrGoogleAccessDeniedByUser   = errors.New("google access denied by user")
	ErrStateCookieEmpty           = errors.New("oauth state cookie is empty")
	ErrStateParamEmpty            = errors.New("oauth state parameter is empty")
	ErrStateMismatch              = errors.New("oauth state mismatch")
	ErrCodeValueEmpty             = errors.New("oauth code value is empty")
)
