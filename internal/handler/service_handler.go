package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/acesite/backend/internal/model"
	"github.com/acesite/backend/internal/repository"
	"github.com/acesite/backend/internal/service"
	"github.com/acesite/backend/internal/validate"
)

// ServiceHandler exposes the services catalog.
type ServiceHandler struct {
	catalog service.CatalogService
}

// NewServiceHandler creates a ServiceHandler with the given service.
func NewServiceHandler(catalog service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type serviceListResponse struct {
	Services []*model.Service `json:"services"`
}

// List handles GET /api/services. Query param: featured.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	featuredOnly := false
	if v := r.URL.Query().Get("featured"); v != "" {
		featuredOnly, _ = strconv.ParseBool(v)
	}

	services, err := h.catalog.List(r.Context(), featuredOnly)
	if err != nil {
		slog.Error("service list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to load services"})
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	writeJSON(w, http.StatusOK, serviceListResponse{Services: services})
}

// Create handles POST /api/admin/services.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form validate.ServiceForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Invalid request body"})
		return
	}

	svc, fieldErrors, err := h.catalog.Create(r.Context(), form)
	if err != nil {
		slog.Error("service create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to create service"})
		return
	}
	if fieldErrors != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Please fix the validation errors.", Errors: fieldErrors})
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// Update handles PUT /api/admin/services/{id}.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var form validate.ServiceForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Invalid request body"})
		return
	}

	svc, fieldErrors, err := h.catalog.Update(r.Context(), id, form)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, actionResponse{Success: false, Message: "Failed to update service"})
		return
	}
	if err != nil {
		slog.Error("service update failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to update service"})
		return
	}
	if fieldErrors != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Please fix the validation errors.", Errors: fieldErrors})
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// Delete handles DELETE /api/admin/services/{id}.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := h.catalog.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, actionResponse{Success: false, Message: "Failed to delete service"})
		return
	}
	if err != nil {
		slog.Error("service delete failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to delete service"})
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Success: true})
}
