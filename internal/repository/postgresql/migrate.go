package postgresql

import (
	"context"
	"fmt"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/database"
)

// migrations run in order on every startup; each statement must be safe to
// re-apply.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin',
		permissions JSONB NOT NULL DEFAULT '[]',
		oauth_provider TEXT,
		oauth_provider_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS employees (
		id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		age INTEGER NOT NULL DEFAULT 0,
		national_id TEXT NOT NULL UNIQUE,
		department TEXT NOT NULL DEFAULT '',
		face_data TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS departments (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS punches (
		id BIGSERIAL PRIMARY KEY,
		employee_id BIGINT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		clock_in TEXT,
		clock_out TEXT,
		event_type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_punches_employee_date ON punches (employee_id, date)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGSERIAL PRIMARY KEY,
		admin_id BIGINT NOT NULL REFERENCES admins(id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		user_agent TEXT,
		ip_address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_token_hash ON refresh_tokens (token_hash)`,
}

// Migrate applies the schema and permission patches. It replaces what used to
// be ad-hoc bootstrap statements scattered around startup: one explicit,
// idempotent step before the server accepts traffic.
func Migrate(ctx context.Context, db *database.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	// Every owner-role admin manages departments. Older databases predate the
	// departments feature, so the grant is patched in here rather than
	// assumed at account creation.
	patch := `
		UPDATE admins
		SET permissions = permissions || $1::jsonb, updated_at = NOW()
		WHERE role = $2 AND NOT permissions ? $3
	`
	grant := fmt.Sprintf(`["%s"]`, admin.PermissionDepartmentManage)
	if _, err := db.Exec(ctx, patch, grant, string(admin.RoleOwner), string(admin.PermissionDepartmentManage)); err != nil {
		return fmt.Errorf("owner permission patch failed: %w", err)
	}

	return nil
}
