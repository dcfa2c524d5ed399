package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// ContactHandler handles visitor contact form submissions.
type ContactHandler struct {
	contacts service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contacts service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// submitRequest is the expected JSON body for POST /api/contact/.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact/. The message is stored before the owner
// notification is attempted, so a delivery failure still reports the stored
// record (500 with a "detail" field) rather than rolling it back.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contacts.Submit(r.Context(), msg); err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, "validation failed", map[string]any{
				"fields": vErr.Fields,
			})
			return
		}
		var dErr *service.DeliveryError
		if errors.As(err, &dErr) {
			writeError(w, http.StatusInternalServerError,
				"message stored but notification delivery failed", map[string]any{
					"detail": dErr.Err.Error(),
				})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to submit message", nil)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}
