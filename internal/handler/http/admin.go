package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	ListAdmins(w http.ResponseWriter, r *http.Request)
	CreateAdmin(w http.ResponseWriter, r *http.Request)
	UpdateAdminRole(w http.ResponseWriter, r *http.Request)
	DeleteAdmin(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &adminHandlerImpl{adminService: adminService}
}

// ListAdmins implements AdminHandler
func (h *adminHandlerImpl) ListAdmins(w http.ResponseWriter, r *http.Request) {
	results, err := h.adminService.List(r.Context())
	if err != nil {
		slog.Error("List admins service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateAdmin implements AdminHandler
func (h *adminHandlerImpl) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req admin.CreateAdminRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create admin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adminService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create admin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Admin created successfully", result)
}

// UpdateAdminRole implements AdminHandler
func (h *adminHandlerImpl) UpdateAdminRole(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		response.BadRequest(w, "Admin ID must be a positive integer", nil)
		return
	}

	var req admin.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update admin role decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.adminService.UpdateRole(r.Context(), id, req); err != nil {
		slog.Error("Update admin role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin role updated successfully", nil)
}

// DeleteAdmin implements AdminHandler
func (h *adminHandlerImpl) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		response.BadRequest(w, "Admin ID must be a positive integer", nil)
		return
	}

	if err := h.adminService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete admin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin deleted successfully", nil)
}
