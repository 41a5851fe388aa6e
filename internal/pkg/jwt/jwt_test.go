package jwt

import (
	"testing"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	perms := []admin.Permission{admin.PermissionAttendanceView, admin.PermissionAttendanceAnalyze}
	tokenString, expiresAt, err := svc.GenerateAccessToken(42, "owner@example.com", admin.RoleOwner, perms)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	adminID, _ := token.Get("admin_id")
	assert.Equal(t, "42", adminID)

	email, _ := token.Get("email")
	assert.Equal(t, "owner@example.com", email)

	role, _ := token.Get("role")
	assert.Equal(t, "owner", role)

	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)

	rawPerms, ok := token.Get("permissions")
	require.True(t, ok)
	claimPerms, ok := rawPerms.([]interface{})
	require.True(t, ok)
	require.Len(t, claimPerms, 2)
	assert.Equal(t, "attendance.view", claimPerms[0])
	assert.Equal(t, "attendance.analyze", claimPerms[1])
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := svc.GenerateRefreshToken(7)
	require.NoError(t, err)

	adminID, err := svc.AdminIDFromRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), adminID)
}

func TestAdminIDFromRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := svc.GenerateAccessToken(7, "a@b.cd", admin.RoleAdmin, nil)
	require.NoError(t, err)

	_, err = svc.AdminIDFromRefreshToken(tokenString)
	assert.Error(t, err)
}

func TestAdminIDFromRefreshToken_RejectsForgedToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")
	other := NewJWTService("a-different-secret", "1h", "24h")

	tokenString, _, err := other.GenerateRefreshToken(7)
	require.NoError(t, err)

	_, err = svc.AdminIDFromRefreshToken(tokenString)
	assert.Error(t, err)
}
