package attendance

import "time"

type EventType string

const (
	EventClockIn  EventType = "clock_in"
	EventClockOut EventType = "clock_out"
	EventLeave    EventType = "leave"
)

// IsValidEventType reports whether t is one of the known punch event types.
func IsValidEventType(t EventType) bool {
	return t == EventClockIn || t == EventClockOut || t == EventLeave
}

// Punch is one logged clock-in, clock-out, or leave event for an employee on
// a date. Punches are immutable once written.
//
// Clock times are stored as raw "HH:MM:SS" strings. The analyzer tolerates
// malformed values, so the data layer never parses them on the way in or out.
// A leave punch carries no times; a clock punch carries exactly the time
// field matching its event type.
type Punch struct {
	ID         int64
	EmployeeID int64
	Date       time.Time // calendar date, time component zero
	ClockIn    *string
	ClockOut   *string
	EventType  EventType
	CreatedAt  time.Time
}

// DateString returns the punch date as "YYYY-MM-DD".
func (p Punch) DateString() string {
	return p.Date.Format("2006-01-02")
}
