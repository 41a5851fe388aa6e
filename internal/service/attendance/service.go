package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/validator"
)

type attendanceServiceImpl struct {
	punchRepo attendance.PunchRepository
	analyzer  *Analyzer
	now       func() time.Time
}

func NewAttendanceService(punchRepo attendance.PunchRepository, analyzer *Analyzer) attendance.AttendanceService {
	return &attendanceServiceImpl{
		punchRepo: punchRepo,
		analyzer:  analyzer,
		now:       time.Now,
	}
}

func (s *attendanceServiceImpl) RecordPunch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	now := s.now()
	clock := now.Format("15:04:05")

	punch := attendance.Punch{
		EmployeeID: req.EmployeeID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		EventType:  attendance.EventType(req.EventType),
	}

	switch punch.EventType {
	case attendance.EventClockIn:
		punch.ClockIn = &clock
	case attendance.EventClockOut:
		punch.ClockOut = &clock
	}

	created, err := s.punchRepo.Create(ctx, punch)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to record punch: %w", err)
	}

	return attendance.ToPunchResponse(created), nil
}

func (s *attendanceServiceImpl) RecordManualPunch(ctx context.Context, req attendance.ManualPunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	punch := attendance.Punch{
		EmployeeID: req.EmployeeID,
		Date:       date,
		EventType:  attendance.EventType(req.EventType),
	}

	switch punch.EventType {
	case attendance.EventClockIn:
		punch.ClockIn = req.Time
	case attendance.EventClockOut:
		punch.ClockOut = req.Time
	}

	created, err := s.punchRepo.Create(ctx, punch)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to record manual punch: %w", err)
	}

	return attendance.ToPunchResponse(created), nil
}

func (s *attendanceServiceImpl) ListPunches(ctx context.Context, filter attendance.PunchFilter) ([]attendance.PunchResponse, int64, error) {
	punches, total, err := s.punchRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]attendance.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, attendance.ToPunchResponse(p))
	}

	return responses, total, nil
}

// Analyze implements attendance.AttendanceService. Employee existence is
// deliberately not checked: an id with no punch records, known or not, gets
// the all-absent report for the month.
func (s *attendanceServiceImpl) Analyze(ctx context.Context, req attendance.AnalysisRequest) (attendance.MonthlyAnalysis, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyAnalysis{}, err
	}

	year, month, err := validator.ParseYearMonth(req.Month)
	if err != nil {
		return attendance.MonthlyAnalysis{}, err
	}

	punches, err := s.punchRepo.ListByEmployeeAndMonth(ctx, req.EmployeeID, year, month)
	if err != nil {
		return attendance.MonthlyAnalysis{}, fmt.Errorf("failed to load punches for analysis: %w", err)
	}

	return s.analyzer.Analyze(year, month, punches), nil
}
