package attendance

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/validator"
)

// Policy holds the attendance business rules as "HH:MM:SS" clock values plus
// the monthly overtime threshold. The values are company policy, not
// universal truths, so they come in from configuration.
type Policy struct {
	WorkStart         string
	WorkEnd           string
	GraceEnd          string
	OvertimeEnd       string
	MonthlyLimitHours float64
}

// DefaultPolicy returns the stock policy: 10:30 nominal start, 18:00 nominal
// end with a 18:30 grace bucket and a 19:00 overtime cap, 180 hours a month.
func DefaultPolicy() Policy {
	return Policy{
		WorkStart:         "10:30:00",
		WorkEnd:           "18:00:00",
		GraceEnd:          "18:30:00",
		OvertimeEnd:       "19:00:00",
		MonthlyLimitHours: 180.0,
	}
}

// Analyzer computes monthly attendance summaries from raw punch records. It
// is a pure calculator: no storage access, no internal state beyond the
// parsed policy.
type Analyzer struct {
	workStart    int // seconds of day
	workEnd      int
	graceEnd     int
	overtimeEnd  int
	monthlyLimit float64
}

func NewAnalyzer(policy Policy) (*Analyzer, error) {
	workStart, err := parseClock(policy.WorkStart)
	if err != nil {
		return nil, fmt.Errorf("invalid work start %q: %w", policy.WorkStart, err)
	}
	workEnd, err := parseClock(policy.WorkEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid work end %q: %w", policy.WorkEnd, err)
	}
	graceEnd, err := parseClock(policy.GraceEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid grace end %q: %w", policy.GraceEnd, err)
	}
	overtimeEnd, err := parseClock(policy.OvertimeEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid overtime end %q: %w", policy.OvertimeEnd, err)
	}
	if policy.MonthlyLimitHours <= 0 {
		return nil, fmt.Errorf("monthly limit must be positive, got %v", policy.MonthlyLimitHours)
	}

	return &Analyzer{
		workStart:    workStart,
		workEnd:      workEnd,
		graceEnd:     graceEnd,
		overtimeEnd:  overtimeEnd,
		monthlyLimit: policy.MonthlyLimitHours,
	}, nil
}

// dailyAggregate collects the raw clock strings recorded on one date.
type dailyAggregate struct {
	clockIns  []string
	clockOuts []string
}

// Analyze folds one month of punch records into a summary. Punch order does
// not matter. Dates missing either a clock-in or a clock-out contribute no
// hours; a date whose time strings fail to parse is skipped the same way, so
// one bad record never voids the whole report.
//
// Present and leave date sets are tracked independently: a date carrying both
// a leave marker and a clock-in counts in both. This mirrors the historical
// reporting behavior and is relied on downstream, so it is deliberate.
func (a *Analyzer) Analyze(year int, month time.Month, punches []attendance.Punch) attendance.MonthlyAnalysis {
	totalDays := validator.DaysInMonth(year, month)

	allDates := make([]string, 0, totalDays)
	for day := 1; day <= totalDays; day++ {
		allDates = append(allDates, fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
	}

	presentDates := make(map[string]struct{})
	leaveDates := make(map[string]struct{})
	daily := make(map[string]*dailyAggregate)

	for _, punch := range punches {
		date := punch.DateString()
		switch punch.EventType {
		case attendance.EventClockIn:
			agg := daily[date]
			if agg == nil {
				agg = &dailyAggregate{}
				daily[date] = agg
			}
			if punch.ClockIn != nil && *punch.ClockIn != "" {
				agg.clockIns = append(agg.clockIns, *punch.ClockIn)
			}
			presentDates[date] = struct{}{}
		case attendance.EventClockOut:
			agg := daily[date]
			if agg == nil {
				agg = &dailyAggregate{}
				daily[date] = agg
			}
			if punch.ClockOut != nil && *punch.ClockOut != "" {
				agg.clockOuts = append(agg.clockOuts, *punch.ClockOut)
			}
		case attendance.EventLeave:
			leaveDates[date] = struct{}{}
		}
	}

	var totalHours float64
	for _, agg := range daily {
		totalHours += a.creditedHours(agg)
	}

	absentDates := make([]string, 0, totalDays)
	for _, date := range allDates {
		_, present := presentDates[date]
		_, onLeave := leaveDates[date]
		if !present && !onLeave {
			absentDates = append(absentDates, date)
		}
	}

	overtime := totalHours - a.monthlyLimit
	if overtime < 0 {
		overtime = 0
	}

	return attendance.MonthlyAnalysis{
		TotalDays:        totalDays,
		PresentDays:      len(presentDates),
		LeaveDays:        len(leaveDates),
		AbsentDays:       len(absentDates),
		TotalHours:       round2(totalHours),
		OvertimeHours:    round2(overtime),
		MonthlyThreshold: a.monthlyLimit,
		PresentDates:     sortedKeys(presentDates),
		LeaveDates:       sortedKeys(leaveDates),
		AbsentDates:      absentDates,
	}
}

// creditedHours computes one day's contribution. The earliest clock-in and
// latest clock-out bound the day; the start is clamped to the nominal work
// start, and the end is rounded into the grace and overtime buckets.
func (a *Analyzer) creditedHours(agg *dailyAggregate) float64 {
	if len(agg.clockIns) == 0 || len(agg.clockOuts) == 0 {
		return 0
	}

	start, ok := earliest(agg.clockIns)
	if !ok {
		return 0
	}
	end, ok := latest(agg.clockOuts)
	if !ok {
		return 0
	}

	if start < a.workStart {
		start = a.workStart
	}

	switch {
	case end <= a.workEnd:
		// Leaving before the nominal end earns exactly what was worked.
	case end <= a.graceEnd:
		end = a.graceEnd
	default:
		end = a.overtimeEnd
	}

	if end <= start {
		return 0
	}

	return float64(end-start) / 3600.0
}

// earliest parses every clock string and returns the smallest. Any parse
// failure voids the whole day, matching the historical all-or-nothing
// handling of malformed records.
func earliest(clocks []string) (int, bool) {
	best := -1
	for _, clock := range clocks {
		secs, err := parseClock(clock)
		if err != nil {
			return 0, false
		}
		if best < 0 || secs < best {
			best = secs
		}
	}
	return best, best >= 0
}

func latest(clocks []string) (int, bool) {
	best := -1
	for _, clock := range clocks {
		secs, err := parseClock(clock)
		if err != nil {
			return 0, false
		}
		if secs > best {
			best = secs
		}
	}
	return best, best >= 0
}

// parseClock converts "HH:MM:SS" to seconds of day.
func parseClock(clock string) (int, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
