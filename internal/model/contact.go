package model

import (
	"net/mail"
	"strings"
	"time"
)

// MaxContactMessageLength caps the free-text message body.
const MaxContactMessageLength = 5000

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

// Trim strips surrounding whitespace from every input field. It runs before
// Validate so that whitespace-only input counts as missing.
func (m *ContactMessage) Trim() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)
}

// Validate requires all four input fields to be non-empty and the email to
// have a valid address shape.
func (m *ContactMessage) Validate() error {
	fields := map[string]string{}
	if m.Name == "" {
		fields["name"] = "name is required"
	}
	if m.Email == "" {
		fields["email"] = "email is required"
	} else if _, err := mail.ParseAddress(m.Email); err != nil {
		fields["email"] = "email is not a valid address"
	}
	if m.Subject == "" {
		fields["subject"] = "subject is required"
	}
	if m.Message == "" {
		fields["message"] = "message is required"
	} else if len([]rune(m.Message)) > MaxContactMessageLength {
		fields["message"] = "message is too long"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
