package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/employee"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements attendance.PunchRepository.
func (p *punchRepositoryImpl) Create(ctx context.Context, punch attendance.Punch) (attendance.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO punches (employee_id, date, clock_in, clock_out, event_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		punch.EmployeeID, punch.Date, punch.ClockIn, punch.ClockOut, string(punch.EventType),
	).Scan(&punch.ID, &punch.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// FK violation: the referenced employee does not exist.
			return attendance.Punch{}, employee.ErrEmployeeNotFound
		}
		return attendance.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return punch, nil
}

// ListByEmployeeAndMonth implements attendance.PunchRepository.
func (p *punchRepositoryImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID int64, year int, month time.Month) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, p.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, event_type, created_at
		FROM punches
		WHERE employee_id = $1 AND date >= $2 AND date < $3
	`

	rows, err := q.Query(ctx, query, employeeID, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches for month: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// List implements attendance.PunchRepository.
func (p *punchRepositoryImpl) List(ctx context.Context, filter attendance.PunchFilter) ([]attendance.Punch, int64, error) {
	q := GetQuerier(ctx, p.db)

	where := ""
	args := []interface{}{}
	if filter.EmployeeID != nil {
		where = "WHERE employee_id = $1"
		args = append(args, *filter.EmployeeID)
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM punches %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	listQuery := fmt.Sprintf(`
		SELECT id, employee_id, date, clock_in, clock_out, event_type, created_at
		FROM punches
		%s
		ORDER BY id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	punches, err := scanPunches(rows)
	if err != nil {
		return nil, 0, err
	}

	return punches, total, nil
}

func scanPunches(rows pgx.Rows) ([]attendance.Punch, error) {
	var punches []attendance.Punch
	for rows.Next() {
		var punch attendance.Punch
		var eventType string
		err := rows.Scan(
			&punch.ID, &punch.EmployeeID, &punch.Date, &punch.ClockIn,
			&punch.ClockOut, &eventType, &punch.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punch.EventType = attendance.EventType(eventType)
		punches = append(punches, punch)
	}
	return punches, rows.Err()
}
