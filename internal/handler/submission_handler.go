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
)

// SubmissionHandler exposes the admin submissions inbox. All routes are
// mounted behind auth.RequireAdmin.
type SubmissionHandler struct {
	contact service.ContactService
}

// NewSubmissionHandler creates a SubmissionHandler with the given service.
func NewSubmissionHandler(contact service.ContactService) *SubmissionHandler {
	return &SubmissionHandler{contact: contact}
}

type submissionListResponse struct {
	Submissions []*model.ContactSubmission `json:"submissions"`
}

// List handles GET /api/admin/submissions.
// Query params: handled (true/false), limit, offset.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.SubmissionListOptions{Limit: 50}

	if v := r.URL.Query().Get("handled"); v != "" {
		if handled, err := strconv.ParseBool(v); err == nil {
			opts.Handled = &handled
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			opts.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	subs, err := h.contact.List(r.Context(), opts)
	if err != nil {
		slog.Error("submission list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to load submissions"})
		return
	}

	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, submissionListResponse{Submissions: subs})
}

// Count handles GET /api/admin/submissions/count.
func (h *SubmissionHandler) Count(w http.ResponseWriter, r *http.Request) {
	var filter model.SubmissionFilter
	if v := r.URL.Query().Get("handled"); v != "" {
		if handled, err := strconv.ParseBool(v); err == nil {
			filter.Handled = &handled
		}
	}

	n, err := h.contact.Count(r.Context(), filter)
	if err != nil {
		slog.Error("submission count failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to load submissions"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

type submissionUpdateRequest struct {
	Handled *bool   `json:"handled"`
	Notes   *string `json:"notes"`
}

// Update handles PATCH /api/admin/submissions/{id}. Only provided fields
// change.
func (h *SubmissionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Failed to update submission"})
		return
	}

	var req submissionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Failed to update submission"})
		return
	}

	err := h.contact.Update(r.Context(), id, model.SubmissionUpdate{Handled: req.Handled, Notes: req.Notes})
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, actionResponse{Success: false, Message: "Failed to update submission"})
		return
	}
	if err != nil {
		slog.Error("submission update failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to update submission"})
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Success: true})
}

// Delete handles DELETE /api/admin/submissions/{id}. A repeated delete of
// the same id reports failure, surfacing double-click bugs in the UI.
func (h *SubmissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Failed to delete submission"})
		return
	}

	err := h.contact.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, actionResponse{Success: false, Message: "Failed to delete submission"})
		return
	}
	if err != nil {
		slog.Error("submission delete failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to delete submission"})
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Success: true})
}
