package handler

import (
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// PortfolioHandler serves the read-only portfolio endpoints: the profile,
// the per-entity lists and the aggregate document.
type PortfolioHandler struct {
	portfolio service.PortfolioService
}

// NewPortfolioHandler creates a PortfolioHandler with the given service.
func NewPortfolioHandler(portfolio service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// Profile handles GET /api/profile/. Zero profile rows is a 404, not an
// internal error.
func (h *PortfolioHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.portfolio.Profile(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load profile", nil)
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "profile not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Skills handles GET /api/skills/.
func (h *PortfolioHandler) Skills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.portfolio.Skills(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load skills", nil)
		return
	}
	// Return [] not null for empty lists
	if skills == nil {
		skills = []*model.Skill{}
	}
	writeJSON(w, http.StatusOK, skills)
}

// Experience handles GET /api/experience/.
func (h *PortfolioHandler) Experience(w http.ResponseWriter, r *http.Request) {
	entries, err := h.portfolio.Experiences(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load experience", nil)
		return
	}
	if entries == nil {
		entries = []*model.Experience{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Certifications handles GET /api/certifications/.
func (h *PortfolioHandler) Certifications(w http.ResponseWriter, r *http.Request) {
	certs, err := h.portfolio.Certifications(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load certifications", nil)
		return
	}
	if certs == nil {
		certs = []*model.Certification{}
	}
	writeJSON(w, http.StatusOK, certs)
}

// Education handles GET /api/education/.
func (h *PortfolioHandler) Education(w http.ResponseWriter, r *http.Request) {
	entries, err := h.portfolio.Education(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load education", nil)
		return
	}
	if entries == nil {
		entries = []*model.Education{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// Services handles GET /api/services/.
func (h *PortfolioHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.portfolio.Services(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load services", nil)
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// Languages handles GET /api/languages/.
func (h *PortfolioHandler) Languages(w http.ResponseWriter, r *http.Request) {
	langs, err := h.portfolio.Languages(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load languages", nil)
		return
	}
	if langs == nil {
		langs = []*model.Language{}
	}
	writeJSON(w, http.StatusOK, langs)
}

// Sections handles GET /api/sections/.
func (h *PortfolioHandler) Sections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.portfolio.Sections(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load sections", nil)
		return
	}
	if sections == nil {
		sections = []*model.SectionConfig{}
	}
	writeJSON(w, http.StatusOK, sections)
}

// Portfolio handles GET /api/portfolio/. Any sub-query failure fails the
// whole aggregate; no partial document is returned.
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	doc, err := h.portfolio.Portfolio(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load portfolio", nil)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
