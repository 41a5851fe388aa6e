package attendance

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for punch records.
type PunchRepository interface {
	// Create writes exactly one punch record.
	Create(ctx context.Context, p Punch) (Punch, error)

	// ListByEmployeeAndMonth returns every punch for the employee whose date
	// falls in the given month, in no particular order.
	ListByEmployeeAndMonth(ctx context.Context, employeeID int64, year int, month time.Month) ([]Punch, error)

	// List returns punches newest first with pagination.
	List(ctx context.Context, filter PunchFilter) ([]Punch, int64, error)
}
