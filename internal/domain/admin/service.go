package admin

import "context"

// AdminService manages admin accounts. All operations are owner-only; the
// HTTP layer enforces that before calling in.
type AdminService interface {
	List(ctx context.Context) ([]AdminResponse, error)
	Create(ctx context.Context, req CreateAdminRequest) (AdminResponse, error)
	Delete(ctx context.Context, id int64) error
	UpdateRole(ctx context.Context, id int64, req UpdateRoleRequest) error
}
