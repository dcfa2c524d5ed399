package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

type mockContactService struct {
	submitFunc func(ctx context.Context, msg *model.ContactMessage) error
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactMessage) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

func postContact(t *testing.T, h *ContactHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestContactSubmit_Success(t *testing.T) {
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			msg.ID = 7
			return nil
		},
	}
	h := NewContactHandler(svc)

	rec := postContact(t, h, `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello there"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got model.ContactMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if got.ID != 7 || got.Name != "Alice" {
		t.Errorf("unexpected response body: %+v", got)
	}
}

func TestContactSubmit_InvalidJSON(t *testing.T) {
	called := false
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			called = true
			return nil
		},
	}
	h := NewContactHandler(svc)

	rec := postContact(t, h, `{"name": "Alice"`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("service must not be called for a malformed body")
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["error"] != "invalid JSON body" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestContactSubmit_ValidationError(t *testing.T) {
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return &model.ValidationError{Fields: map[string]string{
				"email": "a valid email address is required",
			}}
		},
	}
	h := NewContactHandler(svc)

	rec := postContact(t, h, `{"name":"Alice","email":"not-an-email","subject":"Hi","message":"Hello"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Error != "validation failed" {
		t.Errorf("unexpected error message: %q", body.Error)
	}
	if body.Fields["email"] == "" {
		t.Errorf("expected a field-level message for email, got %v", body.Fields)
	}
}

func TestContactSubmit_DeliveryFailure(t *testing.T) {
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return &service.DeliveryError{Err: errors.New("smtp: connection refused")}
		},
	}
	h := NewContactHandler(svc)

	rec := postContact(t, h, `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Error != "message stored but notification delivery failed" {
		t.Errorf("unexpected error message: %q", body.Error)
	}
	if !strings.Contains(body.Detail, "connection refused") {
		t.Errorf("expected delivery detail, got %q", body.Detail)
	}
}

func TestContactSubmit_StorageFailure(t *testing.T) {
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("database is down")
		},
	}
	h := NewContactHandler(svc)

	rec := postContact(t, h, `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["error"] != "failed to submit message" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
	if _, ok := body["detail"]; ok {
		t.Error("storage failures must not leak a detail field")
	}
}
