package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/department"
	"github.com/puantaj-hr/attendance-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &departmentHandlerImpl{departmentService: departmentService}
}

// ListDepartments implements DepartmentHandler
func (h *departmentHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	results, err := h.departmentService.List(r.Context())
	if err != nil {
		slog.Error("List departments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateDepartment implements DepartmentHandler
func (h *departmentHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create department service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", result)
}

// DeleteDepartment implements DepartmentHandler
func (h *departmentHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		response.BadRequest(w, "Department ID must be a positive integer", nil)
		return
	}

	if err := h.departmentService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete department service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}
