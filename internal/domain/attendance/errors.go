package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidEventType   = errors.New("event_type must be 'clock_in' or 'clock_out'")
	ErrInvalidMonthFormat = errors.New("month must be in YYYY-MM format")
	ErrPunchNotFound      = errors.New("punch record not found")
)
