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

// ProjectHandler exposes the portfolio. Public routes serve published
// projects only; admin routes see everything.
type ProjectHandler struct {
	projects service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projects service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type projectListResponse struct {
	Projects []*model.Project `json:"projects"`
}

// List handles GET /api/projects. Query params: category, featured.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ProjectListOptions{PublishedOnly: true}
	h.listWith(w, r, opts)
}

// AdminList handles GET /api/admin/projects, including drafts.
func (h *ProjectHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, model.ProjectListOptions{})
}

func (h *ProjectHandler) listWith(w http.ResponseWriter, r *http.Request, opts model.ProjectListOptions) {
	opts.Category = r.URL.Query().Get("category")
	if v := r.URL.Query().Get("featured"); v != "" {
		if featured, err := strconv.ParseBool(v); err == nil {
			opts.Featured = &featured
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

	projects, err := h.projects.List(r.Context(), opts)
	if err != nil {
		slog.Error("project list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to load projects"})
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projectListResponse{Projects: projects})
}

// GetBySlug handles GET /api/projects/{slug}. Unpublished projects are not
// visible here.
func (h *ProjectHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	project, err := h.projects.GetBySlug(r.Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, actionResponse{Success: false, Message: "Project not found"})
		return
	}
	if err != nil {
		slog.Error("project lookup failed", "error", err, "slug", slug)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to load project"})
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Categories handles GET /api/projects/categories, listing the distinct
// categories of published projects.
func (h *ProjectHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.projects.Categories(r.Context())
	if err != nil {
		slog.Error("project categories failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to load categories"})
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

// AdminGet handles GET /api/admin/projects/{id}.
func (h *ProjectHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	project, err := h.projects.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, actionResponse{Success: false, Message: "Project not found"})
		return
	}
	if err != nil {
		slog.Error("project lookup failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to load project"})
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create handles POST /api/admin/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form validate.ProjectForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Invalid request body"})
		return
	}

	project, fieldErrors, err := h.projects.Create(r.Context(), form)
	if err != nil {
		slog.Error("project create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to create project"})
		return
	}
	if fieldErrors != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Please fix the validation errors.", Errors: fieldErrors})
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// Update handles PUT /api/admin/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var form validate.ProjectForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Invalid request body"})
		return
	}

	project, fieldErrors, err := h.projects.Update(r.Context(), id, form)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, actionResponse{Success: false, Message: "Failed to update project"})
		return
	}
	if err != nil {
		slog.Error("project update failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to update project"})
		return
	}
	if fieldErrors != nil {
		writeJSON(w, http.StatusBadRequest, actionResponse{Success: false, Message: "Please fix the validation errors.", Errors: fieldErrors})
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /api/admin/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := h.projects.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, actionResponse{Success: false, Message: "Failed to delete project"})
		return
	}
	if err != nil {
		slog.Error("project delete failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to delete project"})
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Success: true})
}

// ToggleFeatured handles POST /api/admin/projects/{id}/toggle-featured.
func (h *ProjectHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	featured, err := h.projects.ToggleFeatured(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, actionResponse{Success: false, Message: "Failed to update project"})
		return
	}
	if err != nil {
		slog.Error("project toggle failed", "error", err, "id", id)
		writeJSON(w, http.StatusInternalServerError, actionResponse{Success: false, Message: "Failed to update project"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "featured": featured})
}
