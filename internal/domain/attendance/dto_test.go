package attendance

import (
	"errors"
	"testing"

	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPunchRequest_Validate(t *testing.T) {
	req := PunchRequest{EmployeeID: 1, EventType: "clock_in"}
	assert.NoError(t, req.Validate())

	req = PunchRequest{EmployeeID: 1, EventType: "clock_out"}
	assert.NoError(t, req.Validate())

	// Leave markers go through the manual endpoint only.
	req = PunchRequest{EmployeeID: 1, EventType: "leave"}
	assert.Error(t, req.Validate())

	req = PunchRequest{EmployeeID: 0, EventType: "clock_in"}
	assert.Error(t, req.Validate())

	req = PunchRequest{EmployeeID: 1, EventType: "giris"}
	assert.Error(t, req.Validate())
}

func TestManualPunchRequest_Validate(t *testing.T) {
	req := ManualPunchRequest{EmployeeID: 1, Date: "2024-02-29", EventType: "clock_in", Time: strPtr("09:00:00")}
	assert.NoError(t, req.Validate())

	req = ManualPunchRequest{EmployeeID: 1, Date: "2024-03-01", EventType: "leave"}
	assert.NoError(t, req.Validate())

	// Leave punches must not carry a time.
	req = ManualPunchRequest{EmployeeID: 1, Date: "2024-03-01", EventType: "leave", Time: strPtr("09:00:00")}
	err := req.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "time")

	// Clock punches require a well-formed time.
	req = ManualPunchRequest{EmployeeID: 1, Date: "2024-03-01", EventType: "clock_out"}
	assert.Error(t, req.Validate())

	req = ManualPunchRequest{EmployeeID: 1, Date: "2024-03-01", EventType: "clock_out", Time: strPtr("25:00:00")}
	assert.Error(t, req.Validate())

	req = ManualPunchRequest{EmployeeID: 1, Date: "2024-02-30", EventType: "clock_in", Time: strPtr("09:00:00")}
	assert.Error(t, req.Validate())
}

func TestAnalysisRequest_Validate(t *testing.T) {
	req := AnalysisRequest{EmployeeID: 7, Month: "2024-02"}
	assert.NoError(t, req.Validate())

	req = AnalysisRequest{EmployeeID: 0, Month: "2024-02"}
	assert.Error(t, req.Validate())

	for _, month := range []string{"", "2024", "2024-13", "2024-1", "02-2024"} {
		req = AnalysisRequest{EmployeeID: 7, Month: month}
		assert.Error(t, req.Validate(), "month %q should be rejected", month)
	}
}
