package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/database"
)

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

// marshalPermissions encodes a permission list for the JSONB column.
func marshalPermissions(perms []admin.Permission) ([]byte, error) {
	if perms == nil {
		perms = []admin.Permission{}
	}
	return json.Marshal(perms)
}

func unmarshalPermissions(raw []byte) []admin.Permission {
	var perms []admin.Permission
	if len(raw) == 0 {
		return []admin.Permission{}
	}
	if err := json.Unmarshal(raw, &perms); err != nil {
		// A corrupt permissions value must not make the account unreadable.
		return []admin.Permission{}
	}
	if perms == nil {
		perms = []admin.Permission{}
	}
	return perms
}

// Create implements admin.AdminRepository.
func (a *adminRepositoryImpl) Create(ctx context.Context, newAdmin admin.Admin) (admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	permsJSON, err := marshalPermissions(newAdmin.Permissions)
	if err != nil {
		return admin.Admin{}, fmt.Errorf("failed to encode permissions: %w", err)
	}

	query := `
		INSERT INTO admins (name, email, password_hash, role, permissions, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		newAdmin.Name,
		newAdmin.Email,
		newAdmin.PasswordHash,
		string(newAdmin.Role),
		permsJSON,
		newAdmin.OAuthProvider,
		newAdmin.OAuthProviderID,
	).Scan(&newAdmin.ID, &newAdmin.CreatedAt, &newAdmin.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return admin.Admin{}, admin.ErrAdminEmailExists
		}
		return admin.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return newAdmin, nil
}

// GetByID implements admin.AdminRepository.
func (a *adminRepositoryImpl) GetByID(ctx context.Context, id int64) (admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, name, email, password_hash, role, permissions, oauth_provider, oauth_provider_id, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	return a.scanAdmin(q.QueryRow(ctx, query, id))
}

// GetByEmail implements admin.AdminRepository.
func (a *adminRepositoryImpl) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, name, email, password_hash, role, permissions, oauth_provider, oauth_provider_id, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	return a.scanAdmin(q.QueryRow(ctx, query, email))
}

func (a *adminRepositoryImpl) scanAdmin(row pgx.Row) (admin.Admin, error) {
	var adm admin.Admin
	var role string
	var permsRaw []byte

	err := row.Scan(
		&adm.ID, &adm.Name, &adm.Email, &adm.PasswordHash, &role, &permsRaw,
		&adm.OAuthProvider, &adm.OAuthProviderID, &adm.CreatedAt, &adm.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	adm.Role = admin.Role(role)
	adm.Permissions = unmarshalPermissions(permsRaw)
	return adm, nil
}

// List implements admin.AdminRepository.
func (a *adminRepositoryImpl) List(ctx context.Context) ([]admin.Admin, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, name, email, password_hash, role, permissions, oauth_provider, oauth_provider_id, created_at, updated_at
		FROM admins
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []admin.Admin
	for rows.Next() {
		var adm admin.Admin
		var role string
		var permsRaw []byte
		err := rows.Scan(
			&adm.ID, &adm.Name, &adm.Email, &adm.PasswordHash, &role, &permsRaw,
			&adm.OAuthProvider, &adm.OAuthProviderID, &adm.CreatedAt, &adm.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		adm.Role = admin.Role(role)
		adm.Permissions = unmarshalPermissions(permsRaw)
		admins = append(admins, adm)
	}

	return admins, rows.Err()
}

// UpdateRole implements admin.AdminRepository.
func (a *adminRepositoryImpl) UpdateRole(ctx context.Context, id int64, role admin.Role, permissions []admin.Permission) error {
	q := GetQuerier(ctx, a.db)

	permsJSON, err := marshalPermissions(permissions)
	if err != nil {
		return fmt.Errorf("failed to encode permissions: %w", err)
	}

	query := `
		UPDATE admins
		SET role = $1, permissions = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID int64
	err = q.QueryRow(ctx, query, string(role), permsJSON, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return admin.ErrAdminNotFound
		}
		return fmt.Errorf("failed to update admin role: %w", err)
	}

	return nil
}

// LinkGoogleAccount implements admin.AdminRepository.
func (a *adminRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE admins
		SET oauth_provider = 'google', oauth_provider_id = $1, updated_at = NOW()
		WHERE email = $2
		RETURNING id
	`

	var updatedID int64
	err := q.QueryRow(ctx, query, googleID, email).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return admin.ErrAdminNotFound
		}
		return fmt.Errorf("failed to link google account: %w", err)
	}

	return nil
}

// Delete implements admin.AdminRepository.
func (a *adminRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}

	return nil
}
