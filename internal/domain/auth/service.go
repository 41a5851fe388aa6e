package auth

import "context"

type AuthService interface {
	// Login authenticates an admin with email and password.
	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle authenticates an admin previously provisioned with the
	// given verified Google email.
	LoginWithGoogle(ctx context.Context, email string, googleID string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates a refresh token into a new token pair.
	RefreshToken(ctx context.Context, refreshToken string, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the given refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
