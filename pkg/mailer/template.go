package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/portfolio/backend/internal/model"
)

// textBody is the plain-text fallback containing every submitted field.
func textBody(msg *model.ContactMessage) string {
	return fmt.Sprintf(
		"You received a new message through the portfolio contact form.\n\n"+
			"Name: %s\n"+
			"Email: %s\n"+
			"Subject: %s\n\n"+
			"Message:\n%s\n",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	)
}

// notificationTmpl renders the HTML alternative. User-supplied fields pass
// through html/template so they cannot inject markup into the mail view.
var notificationTmpl = template.Must(template.New("contact-notification").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>New contact message</title>
  </head>
  <body style="margin:0;padding:0;background-color:#0b1120;font-family:system-ui,-apple-system,'Segoe UI',sans-serif;">
    <table width="100%" cellpadding="0" cellspacing="0" style="padding:24px 0;">
      <tr>
        <td align="center">
          <table width="600" cellpadding="0" cellspacing="0" style="background-color:#020617;border-radius:16px;border:1px solid #1f2937;overflow:hidden;">
            <tr>
              <td style="padding:16px 24px;border-bottom:1px solid #1f2937;background:linear-gradient(135deg,#0ea5e9,#6366f1);">
                <table width="100%">
                  <tr>
                    <td align="left" style="color:#f9fafb;font-size:16px;font-weight:600;">Portfolio</td>
                    <td align="right">{{if .LogoURL}}<img src="{{.LogoURL}}" alt="Logo" style="max-height:32px;display:block;" />{{end}}</td>
                  </tr>
                </table>
              </td>
            </tr>
            <tr>
              <td style="padding:24px;">
                <h1 style="margin:0 0 12px;font-size:20px;color:#e5e7eb;">New contact message</h1>
                <p style="margin:0 0 16px;font-size:14px;color:#9ca3af;line-height:1.6;">
                  Someone reached out through your portfolio contact form.
                </p>
                <table cellpadding="0" cellspacing="0" style="width:100%;margin-bottom:16px;font-size:14px;color:#e5e7eb;">
                  <tr>
                    <td style="padding:4px 0;width:120px;color:#9ca3af;">Name:</td>
                    <td style="padding:4px 0;">{{.Name}}</td>
                  </tr>
                  <tr>
                    <td style="padding:4px 0;width:120px;color:#9ca3af;">Email:</td>
                    <td style="padding:4px 0;"><a href="mailto:{{.Email}}" style="color:#38bdf8;text-decoration:none;">{{.Email}}</a></td>
                  </tr>
                  <tr>
                    <td style="padding:4px 0;width:120px;color:#9ca3af;">Subject:</td>
                    <td style="padding:4px 0;">{{.Subject}}</td>
                  </tr>
                </table>
                <div style="margin-top:16px;">
                  <p style="margin:0 0 8px;font-size:14px;color:#9ca3af;">Message:</p>
                  <div style="background-color:#020617;border-radius:8px;border:1px solid #1f2937;padding:16px;color:#e5e7eb;font-size:14px;line-height:1.6;white-space:pre-wrap;">{{.Message}}</div>
                </div>
              </td>
            </tr>
            <tr>
              <td style="padding:16px 24px;border-top:1px solid #1f2937;text-align:center;font-size:12px;color:#6b7280;">
                Sent automatically by the portfolio backend.
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`))

type notificationData struct {
	Name    string
	Email   string
	Subject string
	Message string
	LogoURL string
}

// htmlBody renders the HTML alternative body for a contact notification.
func htmlBody(msg *model.ContactMessage, logoURL string) (string, error) {
	var b strings.Builder
	err := notificationTmpl.Execute(&b, notificationData{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
		LogoURL: logoURL,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
