package attendance

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/attendance"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	analyzer, err := NewAnalyzer(DefaultPolicy())
	require.NoError(t, err)
	return analyzer
}

func strPtr(s string) *string {
	return &s
}

func clockIn(date, clock string) attendance.Punch {
	return attendance.Punch{
		EmployeeID: 1,
		Date:       mustDate(date),
		ClockIn:    strPtr(clock),
		EventType:  attendance.EventClockIn,
	}
}

func clockOut(date, clock string) attendance.Punch {
	return attendance.Punch{
		EmployeeID: 1,
		Date:       mustDate(date),
		ClockOut:   strPtr(clock),
		EventType:  attendance.EventClockOut,
	}
}

func leave(date string) attendance.Punch {
	return attendance.Punch{
		EmployeeID: 1,
		Date:       mustDate(date),
		EventType:  attendance.EventLeave,
	}
}

func mustDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewAnalyzer_RejectsBadPolicy(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Policy)
	}{
		{"bad work start", func(p *Policy) { p.WorkStart = "not-a-time" }},
		{"bad work end", func(p *Policy) { p.WorkEnd = "25:00:00" }},
		{"bad grace end", func(p *Policy) { p.GraceEnd = "" }},
		{"bad overtime end", func(p *Policy) { p.OvertimeEnd = "19:00" }},
		{"zero monthly limit", func(p *Policy) { p.MonthlyLimitHours = 0 }},
		{"negative monthly limit", func(p *Policy) { p.MonthlyLimitHours = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := DefaultPolicy()
			tt.mutate(&policy)
			_, err := NewAnalyzer(policy)
			assert.Error(t, err)
		})
	}
}

func TestAnalyze_DailyHours(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	tests := []struct {
		name      string
		in, out   string
		wantHours float64
	}{
		{"on time full day", "10:30:00", "18:00:00", 7.5},
		{"early arrival clamped to work start", "08:00:00", "18:00:00", 7.5},
		{"late arrival shortens the day", "11:30:00", "18:00:00", 6.5},
		{"leaving early earns less", "10:30:00", "16:00:00", 5.5},
		{"grace window rounds up to half hour", "10:30:00", "18:10:00", 8.0},
		{"grace boundary exactly", "10:30:00", "18:30:00", 8.0},
		{"one second past grace hits the cap", "10:30:00", "18:30:01", 8.5},
		{"overtime capped at cap end", "10:30:00", "21:45:00", 8.5},
		{"exactly work end is not rounded", "10:30:00", "18:00:00", 7.5},
		{"just before work end", "10:30:00", "17:59:59", 7.5 - 1.0/3600.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.Analyze(2025, time.March, []attendance.Punch{
				clockIn("2025-03-03", tt.in),
				clockOut("2025-03-03", tt.out),
			})
			assert.InDelta(t, tt.wantHours, result.TotalHours, 0.005)
			assert.Equal(t, 1, result.PresentDays)
		})
	}
}

func TestAnalyze_ClockInOnlyCountsPresentWithZeroHours(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockIn("2025-03-10", "10:00:00"),
	})

	assert.Equal(t, 1, result.PresentDays)
	assert.Equal(t, 0.0, result.TotalHours)
	assert.Contains(t, result.PresentDates, "2025-03-10")
	assert.NotContains(t, result.AbsentDates, "2025-03-10")
}

func TestAnalyze_ClockOutOnlyIsNotPresent(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockOut("2025-03-10", "18:00:00"),
	})

	assert.Equal(t, 0, result.PresentDays)
	assert.Equal(t, 0.0, result.TotalHours)
	assert.Contains(t, result.AbsentDates, "2025-03-10")
}

func TestAnalyze_EarliestInLatestOutWin(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockIn("2025-03-05", "12:00:00"),
		clockIn("2025-03-05", "10:45:00"),
		clockOut("2025-03-05", "14:00:00"),
		clockOut("2025-03-05", "17:30:00"),
	})

	// 10:45 to 17:30
	assert.InDelta(t, 6.75, result.TotalHours, 0.005)
	assert.Equal(t, 1, result.PresentDays)
}

func TestAnalyze_ClockOutBeforeClockInEarnsNothing(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockIn("2025-03-07", "15:00:00"),
		clockOut("2025-03-07", "12:00:00"),
	})

	assert.Equal(t, 0.0, result.TotalHours)
	assert.Equal(t, 1, result.PresentDays)
}

func TestAnalyze_MalformedTimeVoidsTheWholeDay(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockIn("2025-03-04", "banana"),
		clockOut("2025-03-04", "18:00:00"),
		clockIn("2025-03-05", "10:30:00"),
		clockOut("2025-03-05", "18:00:00"),
	})

	// The bad day earns nothing but still counts as present; the good day
	// is unaffected.
	assert.InDelta(t, 7.5, result.TotalHours, 0.005)
	assert.Equal(t, 2, result.PresentDays)
}

func TestAnalyze_MalformedClockOutAmongGoodOnes(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockIn("2025-03-04", "10:30:00"),
		clockOut("2025-03-04", "18:00:00"),
		clockOut("2025-03-04", "oops"),
	})

	assert.Equal(t, 0.0, result.TotalHours)
	assert.Equal(t, 1, result.PresentDays)
}

func TestAnalyze_EmptyMonthIsAllAbsent(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.April, nil)

	assert.Equal(t, 30, result.TotalDays)
	assert.Equal(t, 0, result.PresentDays)
	assert.Equal(t, 0, result.LeaveDays)
	assert.Equal(t, 30, result.AbsentDays)
	assert.Equal(t, 0.0, result.TotalHours)
	assert.Equal(t, 0.0, result.OvertimeHours)
	assert.Len(t, result.AbsentDates, 30)
	assert.Equal(t, "2025-04-01", result.AbsentDates[0])
	assert.Equal(t, "2025-04-30", result.AbsentDates[29])
}

func TestAnalyze_LeapFebruary(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	assert.Equal(t, 29, analyzer.Analyze(2024, time.February, nil).TotalDays)
	assert.Equal(t, 28, analyzer.Analyze(2023, time.February, nil).TotalDays)
}

func TestAnalyze_LeaveAndPresentOverlap(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		leave("2025-03-12"),
		clockIn("2025-03-12", "10:30:00"),
		clockOut("2025-03-12", "18:00:00"),
	})

	// A date can legitimately appear in both sets; the day counts stay
	// independent and absence only requires the date in neither.
	assert.Equal(t, 1, result.PresentDays)
	assert.Equal(t, 1, result.LeaveDays)
	assert.Equal(t, 30, result.AbsentDays)
	assert.Contains(t, result.PresentDates, "2025-03-12")
	assert.Contains(t, result.LeaveDates, "2025-03-12")
	assert.NotContains(t, result.AbsentDates, "2025-03-12")
}

func TestAnalyze_LeaveDayIsNotAbsent(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		leave("2025-03-20"),
	})

	assert.Equal(t, 0, result.PresentDays)
	assert.Equal(t, 1, result.LeaveDays)
	assert.Equal(t, 30, result.AbsentDays)
	assert.NotContains(t, result.AbsentDates, "2025-03-20")
}

func TestAnalyze_OvertimeAboveMonthlyLimit(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// Thirty max-credit days: 30 * 8.5 = 255 hours, 75 above the limit.
	var punches []attendance.Punch
	for day := 1; day <= 30; day++ {
		date := fmt.Sprintf("2025-04-%02d", day)
		punches = append(punches,
			clockIn(date, "09:00:00"),
			clockOut(date, "21:00:00"),
		)
	}

	result := analyzer.Analyze(2025, time.April, punches)

	assert.InDelta(t, 255.0, result.TotalHours, 0.005)
	assert.InDelta(t, 75.0, result.OvertimeHours, 0.005)
	assert.Equal(t, 180.0, result.MonthlyThreshold)
	assert.Equal(t, 30, result.PresentDays)
	assert.Equal(t, 0, result.AbsentDays)
}

func TestAnalyze_NoOvertimeBelowMonthlyLimit(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockIn("2025-03-03", "10:30:00"),
		clockOut("2025-03-03", "18:00:00"),
	})

	assert.Equal(t, 0.0, result.OvertimeHours)
}

func TestAnalyze_DateListsAreSorted(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockIn("2025-03-20", "10:30:00"),
		clockIn("2025-03-03", "10:30:00"),
		clockIn("2025-03-11", "10:30:00"),
		leave("2025-03-25"),
		leave("2025-03-08"),
	})

	assert.Equal(t, []string{"2025-03-03", "2025-03-11", "2025-03-20"}, result.PresentDates)
	assert.Equal(t, []string{"2025-03-08", "2025-03-25"}, result.LeaveDates)
	assert.IsIncreasing(t, result.AbsentDates)
}

func TestAnalyze_OrderIndependence(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	punches := []attendance.Punch{
		clockIn("2025-03-03", "10:30:00"),
		clockOut("2025-03-03", "18:10:00"),
		leave("2025-03-04"),
		clockIn("2025-03-05", "12:00:00"),
		clockOut("2025-03-05", "17:00:00"),
	}
	reversed := make([]attendance.Punch, len(punches))
	for i, p := range punches {
		reversed[len(punches)-1-i] = p
	}

	assert.Equal(t, analyzer.Analyze(2025, time.March, punches), analyzer.Analyze(2025, time.March, reversed))
}

func TestAnalyze_Idempotent(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	punches := []attendance.Punch{
		clockIn("2025-03-03", "10:30:00"),
		clockOut("2025-03-03", "18:45:00"),
		leave("2025-03-10"),
	}

	first := analyzer.Analyze(2025, time.March, punches)
	second := analyzer.Analyze(2025, time.March, punches)

	assert.Equal(t, first, second)
}

func TestAnalyze_RoundingToTwoDecimals(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// 10:30:00 to 17:10:10 is 6h40m10s = 6.66944... hours.
	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockIn("2025-03-03", "10:30:00"),
		clockOut("2025-03-03", "17:10:10"),
	})

	assert.Equal(t, 6.67, result.TotalHours)
}

func TestAnalyze_CustomPolicy(t *testing.T) {
	analyzer, err := NewAnalyzer(Policy{
		WorkStart:         "09:00:00",
		WorkEnd:           "17:00:00",
		GraceEnd:          "17:30:00",
		OvertimeEnd:       "18:00:00",
		MonthlyLimitHours: 160,
	})
	require.NoError(t, err)

	result := analyzer.Analyze(2025, time.March, []attendance.Punch{
		clockIn("2025-03-03", "08:00:00"),
		clockOut("2025-03-03", "17:15:00"),
	})

	// Clamped to 09:00, rounded up to 17:30.
	assert.InDelta(t, 8.5, result.TotalHours, 0.005)
	assert.Equal(t, 160.0, result.MonthlyThreshold)
}
