package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/auth"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/database"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/puantaj-hr/attendance-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	admin.AdminRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, adminRepository admin.AdminRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:              db,
		AdminRepository: adminRepository,
		Service:         jwtService,
		JWTRepository:   jwtRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	adminData, err := a.AdminRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if err == admin.ErrAdminNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if adminData.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, adminData, sessionTrackReq)
}

// LoginWithGoogle implements auth.AuthService. Only admins provisioned
// beforehand may sign in; an unknown Google email is rejected, never
// auto-registered.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string, googleID string, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	adminData, err := a.AdminRepository.GetByEmail(ctx, email)
	if err != nil {
		if err == admin.ErrAdminNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if adminData.OAuthProvider == nil || adminData.OAuthProviderID == nil {
		if err := a.AdminRepository.LinkGoogleAccount(ctx, googleID, adminData.Email); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return a.issueTokens(ctx, adminData, sessionTrackReq)
}

// RefreshToken implements auth.AuthService. The presented token is revoked
// and a fresh pair is issued in the same transaction, so every refresh token
// is single use.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	adminID, err := a.Service.AdminIDFromRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to check if refresh token is revoked: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	adminData, err := a.AdminRepository.GetByID(ctx, adminID)
	if err != nil {
		if err == admin.ErrAdminNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get admin by id: %w", err)
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		tokenResponse, err = a.generateTokenPair(txCtx, adminData, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService. Revoking an unknown or already revoked
// token is not an error; logout is idempotent.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.Service.AdminIDFromRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}

	if err := a.JWTRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, adminData admin.Admin, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse, err = a.generateTokenPair(txCtx, adminData, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

func (a *AuthServiceImpl) generateTokenPair(ctx context.Context, adminData admin.Admin, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(adminData.ID, adminData.Email, adminData.Role, adminData.Permissions)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(adminData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.JWTRepository.CreateRefreshToken(ctx, adminData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}

	tokenResponse.Admin = admin.ToAdminResponse(adminData)
	return tokenResponse, nil
}
