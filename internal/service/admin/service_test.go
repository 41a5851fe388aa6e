package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
)

const ownerEmail = "owner@example.com"

type fakeAdminRepository struct {
	nextID int64
	admins map[int64]admin.Admin
}

func newFakeAdminRepository() *fakeAdminRepository {
	return &fakeAdminRepository{nextID: 1, admins: make(map[int64]admin.Admin)}
}

func (f *fakeAdminRepository) Create(_ context.Context, a admin.Admin) (admin.Admin, error) {
	for _, existing := range f.admins {
		if existing.Email == a.Email {
			return admin.Admin{}, admin.ErrAdminEmailExists
		}
	}
	a.ID = f.nextID
	f.nextID++
	f.admins[a.ID] = a
	return a, nil
}

func (f *fakeAdminRepository) GetByID(_ context.Context, id int64) (admin.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return admin.Admin{}, admin.ErrAdminNotFound
	}
	return a, nil
}

func (f *fakeAdminRepository) GetByEmail(_ context.Context, email string) (admin.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return admin.Admin{}, admin.ErrAdminNotFound
}

func (f *fakeAdminRepository) List(_ context.Context) ([]admin.Admin, error) {
	admins := make([]admin.Admin, 0, len(f.admins))
	for _, a := range f.admins {
		admins = append(admins, a)
	}
	return admins, nil
}

func (f *fakeAdminRepository) UpdateRole(_ context.Context, id int64, role admin.Role, permissions []admin.Permission) error {
	a, ok := f.admins[id]
	if !ok {
		return admin.ErrAdminNotFound
	}
	a.Role = role
	a.Permissions = permissions
	f.admins[id] = a
	return nil
}

func (f *fakeAdminRepository) Delete(_ context.Context, id int64) error {
	if _, ok := f.admins[id]; !ok {
		return admin.ErrAdminNotFound
	}
	delete(f.admins, id)
	return nil
}

func (f *fakeAdminRepository) LinkGoogleAccount(_ context.Context, googleID string, email string) error {
	for id, a := range f.admins {
		if a.Email == email {
			provider := "google"
			a.OAuthProvider = &provider
			a.OAuthProviderID = &googleID
			f.admins[id] = a
			return nil
		}
	}
	return admin.ErrAdminNotFound
}

func seedOwner(t *testing.T, repo *fakeAdminRepository) admin.Admin {
	t.Helper()
	owner, err := repo.Create(context.Background(), admin.Admin{
		Name:        "Owner",
		Email:       ownerEmail,
		Role:        admin.RoleOwner,
		Permissions: admin.DefaultPermissions(admin.RoleOwner),
	})
	require.NoError(t, err)
	return owner
}

func TestCreate_AdminWithDefaultPermissions(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	created, err := service.Create(context.Background(), admin.CreateAdminRequest{
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Password: "secret-password",
		Role:     "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin", created.Role)
	assert.Empty(t, created.Permissions)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-password")))
}

func TestCreate_ExplicitPermissions(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	created, err := service.Create(context.Background(), admin.CreateAdminRequest{
		Name:        "Mehmet Demir",
		Email:       "mehmet@example.com",
		Password:    "secret-password",
		Role:        "admin",
		Permissions: []string{string(admin.PermissionAttendanceView), string(admin.PermissionAttendanceAnalyze)},
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"attendance.view", "attendance.analyze"}, created.Permissions)
}

func TestCreate_OwnerRoleRejected(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	_, err := service.Create(context.Background(), admin.CreateAdminRequest{
		Name:     "Pretender",
		Email:    "pretender@example.com",
		Password: "secret-password",
		Role:     "owner",
	})

	assert.ErrorIs(t, err, admin.ErrOwnerRoleNotAssignable)
}

func TestCreate_UnknownRoleRejected(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	_, err := service.Create(context.Background(), admin.CreateAdminRequest{
		Name:     "Nobody",
		Email:    "nobody@example.com",
		Password: "secret-password",
		Role:     "superuser",
	})

	assert.ErrorIs(t, err, admin.ErrUnknownRole)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	req := admin.CreateAdminRequest{
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Password: "secret-password",
		Role:     "admin",
	}

	_, err := service.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Create(context.Background(), req)
	assert.ErrorIs(t, err, admin.ErrAdminEmailExists)
}

func TestDelete_OwnerAccountProtected(t *testing.T) {
	repo := newFakeAdminRepository()
	owner := seedOwner(t, repo)
	service := NewAdminService(repo, ownerEmail)

	err := service.Delete(context.Background(), owner.ID)

	assert.ErrorIs(t, err, admin.ErrOwnerAccountProtected)
}

func TestDelete_RegularAdmin(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	created, err := service.Create(context.Background(), admin.CreateAdminRequest{
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Password: "secret-password",
		Role:     "admin",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	err := service.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}

func TestUpdateRole_OwnerAccountProtected(t *testing.T) {
	repo := newFakeAdminRepository()
	owner := seedOwner(t, repo)
	service := NewAdminService(repo, ownerEmail)

	err := service.UpdateRole(context.Background(), owner.ID, admin.UpdateRoleRequest{Role: "admin"})

	assert.ErrorIs(t, err, admin.ErrOwnerAccountProtected)
}

func TestUpdateRole_KeepsPermissionsWhenAbsent(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	created, err := service.Create(context.Background(), admin.CreateAdminRequest{
		Name:        "Mehmet Demir",
		Email:       "mehmet@example.com",
		Password:    "secret-password",
		Role:        "admin",
		Permissions: []string{string(admin.PermissionReportsExport)},
	})
	require.NoError(t, err)

	require.NoError(t, service.UpdateRole(context.Background(), created.ID, admin.UpdateRoleRequest{Role: "admin"}))

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []admin.Permission{admin.PermissionReportsExport}, stored.Permissions)
}

func TestUpdateRole_ExplicitEmptyListClears(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	created, err := service.Create(context.Background(), admin.CreateAdminRequest{
		Name:        "Mehmet Demir",
		Email:       "mehmet@example.com",
		Password:    "secret-password",
		Role:        "admin",
		Permissions: []string{string(admin.PermissionReportsExport)},
	})
	require.NoError(t, err)

	empty := []string{}
	require.NoError(t, service.UpdateRole(context.Background(), created.ID, admin.UpdateRoleRequest{
		Role:        "admin",
		Permissions: &empty,
	}))

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Permissions)
}

func TestUpdateRole_OwnerRoleRejected(t *testing.T) {
	repo := newFakeAdminRepository()
	service := NewAdminService(repo, ownerEmail)

	created, err := service.Create(context.Background(), admin.CreateAdminRequest{
		Name:     "Ayşe Yılmaz",
		Email:    "ayse@example.com",
		Password: "secret-password",
		Role:     "admin",
	})
	require.NoError(t, err)

	err = service.UpdateRole(context.Background(), created.ID, admin.UpdateRoleRequest{Role: "owner"})

	assert.ErrorIs(t, err, admin.ErrOwnerRoleNotAssignable)
}
