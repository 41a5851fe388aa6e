package attendance

import "context"

type AttendanceService interface {
	// RecordPunch writes one clock-in or clock-out punch stamped with the
	// current server time.
	RecordPunch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// RecordManualPunch writes a back-dated punch, including leave markers.
	RecordManualPunch(ctx context.Context, req ManualPunchRequest) (PunchResponse, error)

	// ListPunches returns punch records newest first.
	ListPunches(ctx context.Context, filter PunchFilter) ([]PunchResponse, int64, error)

	// Analyze computes the monthly attendance summary for an employee.
	Analyze(ctx context.Context, req AnalysisRequest) (MonthlyAnalysis, error)
}
