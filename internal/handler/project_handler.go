package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

// ProjectHandler serves project listing and detail endpoints.
type ProjectHandler struct {
	projects service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projects service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// highlightFilter parses the ?highlight= query parameter permissively:
// "1", "true", "t" and "yes" (case-insensitive) activate the filter and any
// other value, including "false", leaves the list unfiltered. The asymmetry
// is long-standing client-facing behavior and must not be "fixed".
func highlightFilter(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "t", "yes":
		return true
	default:
		return false
	}
}

// List handles GET /api/projects/ with optional ?highlight=.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context(), highlightFilter(r.URL.Query().Get("highlight")))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load projects", nil)
		return
	}
	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// Detail handles GET /api/projects/{slug}/.
func (h *ProjectHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	project, err := h.projects.GetBySlug(r.Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "project not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load project", nil)
		return
	}
	writeJSON(w, http.StatusOK, project)
}
