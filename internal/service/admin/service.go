package admin

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
)

type AdminServiceImpl struct {
	admin.AdminRepository
	ownerEmail string
}

// NewAdminService builds the account management service. ownerEmail names the
// protected primary account that can never be deleted or demoted.
func NewAdminService(adminRepository admin.AdminRepository, ownerEmail string) admin.AdminService {
	return &AdminServiceImpl{
		AdminRepository: adminRepository,
		ownerEmail:      ownerEmail,
	}
}

// List implements admin.AdminService.
func (s *AdminServiceImpl) List(ctx context.Context) ([]admin.AdminResponse, error) {
	admins, err := s.AdminRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	responses := make([]admin.AdminResponse, 0, len(admins))
	for _, a := range admins {
		responses = append(responses, admin.ToAdminResponse(a))
	}

	return responses, nil
}

// Create implements admin.AdminService. The owner role is reserved for the
// protected primary account and can never be handed out here.
func (s *AdminServiceImpl) Create(ctx context.Context, req admin.CreateAdminRequest) (admin.AdminResponse, error) {
	if err := req.Validate(); err != nil {
		return admin.AdminResponse{}, err
	}

	role := admin.Role(req.Role)
	if role == admin.RoleOwner {
		return admin.AdminResponse{}, admin.ErrOwnerRoleNotAssignable
	}
	if role != admin.RoleAdmin {
		return admin.AdminResponse{}, admin.ErrUnknownRole
	}

	permissions := admin.DefaultPermissions(role)
	if req.Permissions != nil {
		permissions = make([]admin.Permission, 0, len(req.Permissions))
		for _, p := range req.Permissions {
			permissions = append(permissions, admin.Permission(p))
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return admin.AdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.AdminRepository.Create(ctx, admin.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  permissions,
	})
	if err != nil {
		return admin.AdminResponse{}, err
	}

	return admin.ToAdminResponse(created), nil
}

// Delete implements admin.AdminService.
func (s *AdminServiceImpl) Delete(ctx context.Context, id int64) error {
	adminData, err := s.AdminRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if adminData.Email == s.ownerEmail {
		return admin.ErrOwnerAccountProtected
	}

	return s.AdminRepository.Delete(ctx, id)
}

// UpdateRole implements admin.AdminService. Absent permissions keep the
// account's current set; an explicit empty list clears it.
func (s *AdminServiceImpl) UpdateRole(ctx context.Context, id int64, req admin.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	role := admin.Role(req.Role)
	if role == admin.RoleOwner {
		return admin.ErrOwnerRoleNotAssignable
	}
	if role != admin.RoleAdmin {
		return admin.ErrUnknownRole
	}

	adminData, err := s.AdminRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if adminData.Email == s.ownerEmail {
		return admin.ErrOwnerAccountProtected
	}

	permissions := adminData.Permissions
	if req.Permissions != nil {
		permissions = make([]admin.Permission, 0, len(*req.Permissions))
		for _, p := range *req.Permissions {
			permissions = append(permissions, admin.Permission(p))
		}
	}

	return s.AdminRepository.UpdateRole(ctx, id, role, permissions)
}
