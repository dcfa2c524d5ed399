package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit trims and validates the message, persists it, then notifies
	// the owner by email. A *model.ValidationError means nothing was
	// stored; a *DeliveryError means the message IS stored but the
	// notification could not be sent.
	Submit(ctx context.Context, msg *model.ContactMessage) error
}
