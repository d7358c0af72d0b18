package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/acesite/backend/internal/service"
	"github.com/acesite/backend/internal/validate"
)

// SettingsHandler exposes the single site-settings document.
type SettingsHandler struct {
	settings service.SettingsService
}

// NewSettingsHandler creates a SettingsHandler with the given service.
func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /api/settings. Always returns content, falling back to
// the built-in defaults before the first save.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		slog.Error("settings load failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to load settings"})
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Update handles PUT /api/admin/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form validate.SettingsForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Invalid request body"})
		return
	}

	fieldErrors, err := h.settings.Update(r.Context(), form)
	if err != nil {
		slog.Error("settings update failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to save settings"})
		return
	}
	if fieldErrors != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Please fix the validation errors.", Errors: fieldErrors})
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Success: true, Message: "Settings saved successfully!"})
}
