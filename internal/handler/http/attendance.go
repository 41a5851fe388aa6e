package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/puantaj-hr/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordPunch(w http.ResponseWriter, r *http.Request)
	RecordManualPunch(w http.ResponseWriter, r *http.Request)
	ListPunches(w http.ResponseWriter, r *http.Request)
	Analyze(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// RecordPunch implements AttendanceHandler
func (h *attendanceHandlerImpl) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordPunch(r.Context(), req)
	if err != nil {
		slog.Error("Record punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", result)
}

// RecordManualPunch implements AttendanceHandler
func (h *attendanceHandlerImpl) RecordManualPunch(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record manual punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordManualPunch(r.Context(), req)
	if err != nil {
		slog.Error("Record manual punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", result)
}

// ListPunches implements AttendanceHandler
func (h *attendanceHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	var filter attendance.PunchFilter

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(w, "employee_id must be a positive integer", nil)
			return
		}
		filter.EmployeeID = &id
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	results, total, err := h.attendanceService.ListPunches(r.Context(), filter)
	if err != nil {
		slog.Error("List punches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	response.SuccessWithMeta(w, results, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// Analyze implements AttendanceHandler
func (h *attendanceHandlerImpl) Analyze(w http.ResponseWriter, r *http.Request) {
	var req attendance.AnalysisRequest

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "employee_id must be a positive integer", nil)
			return
		}
		req.EmployeeID = id
	}
	req.Month = r.URL.Query().Get("month")

	result, err := h.attendanceService.Analyze(r.Context(), req)
	if err != nil {
		slog.Error("Attendance analysis service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
