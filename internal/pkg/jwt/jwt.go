package jwt

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
)

type Service interface {
	GenerateAccessToken(adminID int64, email string, role admin.Role, permissions []admin.Permission) (token string, expiresAt int64, err error)
	GenerateRefreshToken(adminID int64) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	AdminIDFromRefreshToken(tokenString string) (int64, error)
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(adminID int64, email string, role admin.Role, permissions []admin.Permission) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"admin_id":    strconv.FormatInt(adminID, 10),
		"email":       email,
		"role":        string(role),
		"permissions": admin.PermissionStrings(permissions),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(adminID int64) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"admin_id": strconv.FormatInt(adminID, 10),
		"jti":      uuid.New().String(),
		"exp":      expiresAt,
		"type":     "refresh",
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

// AdminIDFromRefreshToken validates a refresh token's signature, expiry and
// type claim, and returns the admin it belongs to.
func (j *JWTService) AdminIDFromRefreshToken(tokenString string) (int64, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return 0, err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return 0, jwt.ErrInvalidJWT()
	}

	adminIDVal, ok := token.Get("admin_id")
	if !ok {
		return 0, jwt.ErrInvalidJWT()
	}

	adminIDStr, ok := adminIDVal.(string)
	if !ok {
		return 0, jwt.ErrInvalidJWT()
	}

	adminID, err := strconv.ParseInt(adminIDStr, 10, 64)
	if err != nil {
		return 0, jwt.ErrInvalidJWT()
	}

	return adminID, nil
}
