package admin

import "context"

// AdminRepository defines data access methods for admin accounts.
type AdminRepository interface {
	Create(ctx context.Context, a Admin) (Admin, error)
	GetByID(ctx context.Context, id int64) (Admin, error)
	GetByEmail(ctx context.Context, email string) (Admin, error)
	List(ctx context.Context) ([]Admin, error)
	UpdateRole(ctx context.Context, id int64, role Role, permissions []Permission) error
	Delete(ctx context.Context, id int64) error

	// LinkGoogleAccount records the Google identity on the admin with the
	// given email after the first successful Google sign-in.
	LinkGoogleAccount(ctx context.Context, googleID string, email string) error
}
