package mailer

import (
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/model"
)

func TestTextBody_ContainsAllFields(t *testing.T) {
	msg := &model.ContactMessage{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Hiring",
		Message: "Are you available next month?",
	}
	body := textBody(msg)
	for _, want := range []string{"Alice", "alice@example.com", "Hiring", "Are you available next month?"} {
		if !strings.Contains(body, want) {
			t.Errorf("text body missing %q:\n%s", want, body)
		}
	}
}

func TestHTMLBody_EscapesUserInput(t *testing.T) {
	msg := &model.ContactMessage{
		Name:    "<script>alert(1)</script>",
		Email:   "mallory@example.com",
		Subject: `"><img src=x onerror=alert(1)>`,
		Message: "hello <b>world</b>",
	}
	body, err := htmlBody(msg, "")
	if err != nil {
		t.Fatalf("htmlBody: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("HTML body contains unescaped <script> from user input")
	}
	if strings.Contains(body, "<img src=x") {
		t.Error("HTML body contains unescaped attribute injection from user input")
	}
	if strings.Contains(body, "<b>world</b>") {
		t.Error("HTML body contains unescaped markup from the message field")
	}
	if !strings.Contains(body, "mallory@example.com") {
		t.Error("HTML body does not contain the sender email")
	}
}

func TestHTMLBody_LogoOptional(t *testing.T) {
	msg := &model.ContactMessage{Name: "A", Email: "a@b.com", Subject: "s", Message: "m"}

	withLogo, err := htmlBody(msg, "https://cdn.example.com/logo.png")
	if err != nil {
		t.Fatalf("htmlBody: %v", err)
	}
	if !strings.Contains(withLogo, "https://cdn.example.com/logo.png") {
		t.Error("expected logo URL in HTML body when configured")
	}

	withoutLogo, err := htmlBody(msg, "")
	if err != nil {
		t.Fatalf("htmlBody: %v", err)
	}
	if strings.Contains(withoutLogo, "<img") {
		t.Error("expected no img tag when logo URL is unset")
	}
}
