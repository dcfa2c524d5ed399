package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

type mockProjectService struct {
	listFunc      func(ctx context.Context, highlightOnly bool) ([]*model.Project, error)
	getBySlugFunc func(ctx context.Context, slug string) (*model.Project, error)
}

func (m *mockProjectService) List(ctx context.Context, highlightOnly bool) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, highlightOnly)
	}
	return nil, nil
}

func (m *mockProjectService) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Create(ctx context.Context, project *model.Project) error {
	return nil
}

func TestHighlightFilter(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"True", true},
		{"t", true},
		{"yes", true},
		{"YES", true},
		{"", false},
		{"0", false},
		{"false", false},
		{"no", false},
		{"anything", false},
	}
	for _, tt := range tests {
		if got := highlightFilter(tt.raw); got != tt.want {
			t.Errorf("highlightFilter(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestProjectList_ForwardsHighlightQuery(t *testing.T) {
	var gotHighlight bool
	svc := &mockProjectService{
		listFunc: func(ctx context.Context, highlightOnly bool) ([]*model.Project, error) {
			gotHighlight = highlightOnly
			return []*model.Project{{ID: 1, Title: "Blog API", Slug: "blog-api"}}, nil
		},
	}
	h := NewProjectHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/?highlight=yes", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !gotHighlight {
		t.Error("expected highlight=yes to activate the filter")
	}
}

func TestProjectList_EmptyIsJSONArray(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects/", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestProjectList_ServiceError(t *testing.T) {
	svc := &mockProjectService{
		listFunc: func(ctx context.Context, highlightOnly bool) ([]*model.Project, error) {
			return nil, errors.New("connection reset")
		},
	}
	h := NewProjectHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

// Detail reads the slug from the route pattern, so it goes through a mux.
func newProjectMux(h *ProjectHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects/{slug}/", h.Detail)
	return mux
}

func TestProjectDetail_Found(t *testing.T) {
	svc := &mockProjectService{
		getBySlugFunc: func(ctx context.Context, slug string) (*model.Project, error) {
			if slug != "blog-api" {
				t.Errorf("expected slug %q, got %q", "blog-api", slug)
			}
			return &model.Project{ID: 1, Title: "Blog API", Slug: "blog-api"}, nil
		},
	}
	mux := newProjectMux(NewProjectHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/projects/blog-api/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got model.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if got.Slug != "blog-api" {
		t.Errorf("unexpected project: %+v", got)
	}
}

func TestProjectDetail_NotFound(t *testing.T) {
	mux := newProjectMux(NewProjectHandler(&mockProjectService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/projects/no-such-project/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["error"] != "project not found" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestProjectDetail_ServiceError(t *testing.T) {
	svc := &mockProjectService{
		getBySlugFunc: func(ctx context.Context, slug string) (*model.Project, error) {
			return nil, errors.New("connection reset")
		},
	}
	mux := newProjectMux(NewProjectHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/projects/blog-api/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
