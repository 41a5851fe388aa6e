package attendance

import (
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

// PunchRequest records a live punch; the server clock supplies date and time.
type PunchRequest struct {
	EmployeeID int64  `json:"employee_id"`
	EventType  string `json:"event_type"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if t := EventType(r.EventType); t != EventClockIn && t != EventClockOut {
		errs = append(errs, validator.ValidationError{
			Field:   "event_type",
			Message: "event_type must be 'clock_in' or 'clock_out'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualPunchRequest records a back-dated punch, including leave markers.
// Leave punches carry no time; clock punches require one.
type ManualPunchRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	EventType  string  `json:"event_type"`
	Time       *string `json:"time"`
}

func (r *ManualPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	eventType := EventType(r.EventType)
	if !IsValidEventType(eventType) {
		errs = append(errs, validator.ValidationError{
			Field:   "event_type",
			Message: "event_type must be 'clock_in', 'clock_out' or 'leave'",
		})
	}

	switch eventType {
	case EventLeave:
		if r.Time != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "time",
				Message: "a leave punch must not carry a time",
			})
		}
	case EventClockIn, EventClockOut:
		if r.Time == nil || !validator.IsValidClockTime(*r.Time) {
			errs = append(errs, validator.ValidationError{
				Field:   "time",
				Message: "time must be in HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PunchFilter selects punches for listing, newest first.
type PunchFilter struct {
	EmployeeID *int64
	Page       int
	Limit      int
}

type PunchResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
	EventType  string  `json:"event_type"`
}

func ToPunchResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Date:       p.DateString(),
		ClockIn:    p.ClockIn,
		ClockOut:   p.ClockOut,
		EventType:  string(p.EventType),
	}
}

// ========================================
// ANALYSIS DTOs
// ========================================

type AnalysisRequest struct {
	EmployeeID int64
	Month      string // "YYYY-MM"
}

func (r *AnalysisRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive integer",
		})
	}

	if _, _, err := validator.ParseYearMonth(r.Month); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthlyAnalysis is the per-employee, per-month attendance summary. It is
// computed on demand and never persisted.
type MonthlyAnalysis struct {
	TotalDays        int      `json:"total_days"`
	PresentDays      int      `json:"present_days"`
	LeaveDays        int      `json:"leave_days"`
	AbsentDays       int      `json:"absent_days"`
	TotalHours       float64  `json:"total_hours"`
	OvertimeHours    float64  `json:"overtime_hours"`
	MonthlyThreshold float64  `json:"monthly_threshold"`
	PresentDates     []string `json:"present_dates"`
	LeaveDates       []string `json:"leave_dates"`
	AbsentDates      []string `json:"absent_dates"`
}
