package service

import (
	"context"
	"log/slog"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/mailer"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.ContactRepository
	mailer mailer.Mailer
}

// NewContactService creates a ContactService backed by the given repository
// and mailer.
func NewContactService(repo repository.ContactRepository, m mailer.Mailer) ContactService {
	return &contactServiceImpl{repo: repo, mailer: m}
}

// Submit persists the message first, then attempts delivery. The order
// matters: a mail failure after a successful insert must not lose the
// message, so it is reported as a DeliveryError instead of rolling back.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Trim()
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		return err
	}

	if err := s.mailer.SendContactNotification(msg); err != nil {
		slog.Error("contact notification failed", "message_id", msg.ID, "error", err)
		return &DeliveryError{Err: err}
	}
	return nil
}
