package service

import (
	"context"
	"errors"
	"testing"

	"github.com/portfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockContactRepo struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
	saved    []*model.ContactMessage
}

func (m *mockContactRepo) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(ctx, msg); err != nil {
			return err
		}
	}
	msg.ID = len(m.saved) + 1
	m.saved = append(m.saved, msg)
	return nil
}

type mockMailer struct {
	sendFunc func(msg *model.ContactMessage) error
	sent     int
}

func (m *mockMailer) SendContactNotification(msg *model.ContactMessage) error {
	m.sent++
	if m.sendFunc != nil {
		return m.sendFunc(msg)
	}
	return nil
}

func validMessage() *model.ContactMessage {
	return &model.ContactMessage{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Hello",
		Message: "I would like to talk about a project.",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestContactSubmit_Success(t *testing.T) {
	repo := &mockContactRepo{}
	mail := &mockMailer{}
	s := NewContactService(repo, mail)

	msg := validMessage()
	if err := s.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved message, got %d", len(repo.saved))
	}
	if mail.sent != 1 {
		t.Errorf("expected 1 notification, got %d", mail.sent)
	}
	if msg.ID == 0 {
		t.Error("expected ID to be populated by the repository")
	}
}

// An invalid message must never reach the store or the mailer.
func TestContactSubmit_ValidationErrorCreatesNoRecord(t *testing.T) {
	repo := &mockContactRepo{}
	mail := &mockMailer{}
	s := NewContactService(repo, mail)

	msg := validMessage()
	msg.Message = "   "
	err := s.Submit(context.Background(), msg)

	var vErr *model.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Errorf("expected no saved record, got %d", len(repo.saved))
	}
	if mail.sent != 0 {
		t.Errorf("expected no notification, got %d", mail.sent)
	}
}

func TestContactSubmit_TrimsBeforeSaving(t *testing.T) {
	repo := &mockContactRepo{}
	s := NewContactService(repo, &mockMailer{})

	msg := validMessage()
	msg.Name = "  Alice  "
	msg.Subject = " Hello "
	if err := s.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.saved[0].Name != "Alice" || repo.saved[0].Subject != "Hello" {
		t.Errorf("expected trimmed fields, got %+v", repo.saved[0])
	}
}

func TestContactSubmit_SaveErrorStopsDelivery(t *testing.T) {
	repo := &mockContactRepo{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("connection refused")
		},
	}
	mail := &mockMailer{}
	s := NewContactService(repo, mail)

	err := s.Submit(context.Background(), validMessage())
	if err == nil {
		t.Fatal("expected error")
	}
	var dErr *DeliveryError
	if errors.As(err, &dErr) {
		t.Error("a store failure must not be reported as a delivery failure")
	}
	if mail.sent != 0 {
		t.Errorf("expected no delivery attempt after save failure, got %d", mail.sent)
	}
}

// The partial-failure policy: a mail failure after a successful insert keeps
// the record and surfaces a DeliveryError, not a rollback.
func TestContactSubmit_DeliveryFailureKeepsRecord(t *testing.T) {
	repo := &mockContactRepo{}
	mail := &mockMailer{
		sendFunc: func(msg *model.ContactMessage) error {
			return errors.New("smtp: connection timed out")
		},
	}
	s := NewContactService(repo, mail)

	err := s.Submit(context.Background(), validMessage())

	var dErr *DeliveryError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected record to remain persisted, got %d saved", len(repo.saved))
	}
	if dErr.Err == nil || dErr.Err.Error() != "smtp: connection timed out" {
		t.Errorf("expected underlying transport error to be surfaced, got %v", dErr.Err)
	}
}
