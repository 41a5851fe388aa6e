package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// National ID validation (Turkish TC identity number: 11 digits)
func IsValidNationalID(id string) bool {
	return len(id) == 11 && IsNumeric(id)
}

// Clock time validation ("HH:MM:SS" time of day)
func IsValidClockTime(clock string) bool {
	_, err := time.Parse("15:04:05", clock)
	return err == nil
}

// ParseYearMonth parses a "YYYY-MM" month designator.
func ParseYearMonth(yearMonth string) (year int, month time.Month, err error) {
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year-month %q: %w", yearMonth, err)
	}
	return t.Year(), t.Month(), nil
}

// DaysInMonth returns the number of calendar days in the given month,
// leap years included.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
