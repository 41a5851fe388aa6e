package auth

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/auth"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/database"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/puantaj-hr/attendance-backend-go/internal/repository/postgresql"
)

var testAuthDB *database.DB

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
)

func authTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}
	if testAuthDB != nil {
		return
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, postgresql.Migrate(context.Background(), testAuthDB))
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	t.Helper()
	tables := []string{"refresh_tokens", "punches", "admins", "employees", "departments"}

	for _, table := range tables {
		_, err := testAuthDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestAdmin(t *testing.T, ctx context.Context, email string) admin.Admin {
	t.Helper()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	adminRepo := postgresql.NewAdminRepository(testAuthDB)
	created, err := adminRepo.Create(ctx, admin.Admin{
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         admin.RoleAdmin,
		Permissions:  []admin.Permission{admin.PermissionAttendanceView},
	})
	require.NoError(t, err)
	return created
}

func newTestAuthService() auth.AuthService {
	adminRepo := postgresql.NewAdminRepository(testAuthDB)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	jwtRepo := postgresql.NewJWTRepository(testAuthDB)
	return NewAuthService(testAuthDB, adminRepo, jwtService, jwtRepo)
}

func testSessionReq() auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	created := createTestAdmin(t, ctx, "login@example.com")
	authService := newTestAuthService()

	loginReq := auth.LoginRequest{Email: "login@example.com", Password: "password123"}
	response, err := authService.Login(ctx, loginReq, testSessionReq())

	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Greater(t, response.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, response.RefreshTokenExpiresIn, int64(0))
	assert.Equal(t, created.ID, response.Admin.ID)
	assert.Equal(t, "admin", response.Admin.Role)
	assert.Equal(t, []string{"attendance.view"}, response.Admin.Permissions)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	createTestAdmin(t, ctx, "login@example.com")
	authService := newTestAuthService()

	loginReq := auth.LoginRequest{Email: "login@example.com", Password: "wrong-password"}
	_, err := authService.Login(ctx, loginReq, testSessionReq())

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	authService := newTestAuthService()

	loginReq := auth.LoginRequest{Email: "nobody@example.com", Password: "password123"}
	_, err := authService.Login(ctx, loginReq, testSessionReq())

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_RotatesAndRevokes(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	createTestAdmin(t, ctx, "login@example.com")
	authService := newTestAuthService()

	loginReq := auth.LoginRequest{Email: "login@example.com", Password: "password123"}
	loginResponse, err := authService.Login(ctx, loginReq, testSessionReq())
	require.NoError(t, err)

	rotated, err := authService.RefreshToken(ctx, loginResponse.RefreshToken, testSessionReq())
	assert.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, loginResponse.RefreshToken, rotated.RefreshToken)

	// The presented token was revoked during rotation; replaying it fails.
	_, err = authService.RefreshToken(ctx, loginResponse.RefreshToken, testSessionReq())
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	authService := newTestAuthService()

	_, err := authService.RefreshToken(ctx, "not-a-jwt", testSessionReq())

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	createTestAdmin(t, ctx, "login@example.com")
	authService := newTestAuthService()

	loginReq := auth.LoginRequest{Email: "login@example.com", Password: "password123"}
	loginResponse, err := authService.Login(ctx, loginReq, testSessionReq())
	require.NoError(t, err)

	require.NoError(t, authService.Logout(ctx, loginResponse.RefreshToken))

	_, err = authService.RefreshToken(ctx, loginResponse.RefreshToken, testSessionReq())
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// Logging out twice is fine.
	assert.NoError(t, authService.Logout(ctx, loginResponse.RefreshToken))
}
