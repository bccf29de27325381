// Package email sends portal notifications via SMTP.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

// Config holds SMTP configuration.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// Service provides email sending. Unconfigured SMTP is not an error:
// every send becomes a no-op reported to the caller.
type Service struct {
	config Config
	server string
	auth   smtp.Auth
}

func NewService(config Config) *Service {
	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)

	return &Service{
		config: config,
		server: config.Host + ":" + config.Port,
		auth:   auth,
	}
}

// IsConfigured returns true if email is configured.
func (s *Service) IsConfigured() bool {
	return s.config.Host != "" && s.config.Port != "" && s.config.From != ""
}

// SendEmail sends a plain text email.
func (s *Service) SendEmail(to []string, subject, body string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email not configured")
	}

	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	msg := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: %s\r\n"+
			"Subject: %s\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		strings.Join(to, ", "),
		from,
		subject,
		body,
	))

	return smtp.SendMail(s.server, s.auth, s.config.From, to, msg)
}

// SendHTMLEmail sends an HTML email with a plain-text fallback part.
func (s *Service) SendHTMLEmail(to []string, subject, htmlBody string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email not configured")
	}

	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	boundary := "boundary-framelight"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary)
	fmt.Fprintf(&msg, "\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "Please view this email in an HTML-capable email client.\r\n")
	fmt.Fprintf(&msg, "\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	fmt.Fprintf(&msg, "Content-Type: text/html; charset=UTF-8\r\n")
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "%s\r\n", htmlBody)
	fmt.Fprintf(&msg, "\r\n")
	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	return smtp.SendMail(s.server, s.auth, s.config.From, to, msg.Bytes())
}

// ReviewReadyData fills the "a cut is ready for your review" email sent
// to the organization's primary contact.
type ReviewReadyData struct {
	AppName     string
	ContactName string
	ProjectName string
	ItemTitle   string
	ReviewURL   string
}

// DecisionData fills the notification sent to the agency when a client
// approves or requests changes.
type DecisionData struct {
	AppName     string
	ProjectName string
	ItemTitle   string
	Status      string
	DecidedBy   string
}

// SendReviewReady notifies a client contact that an approval item awaits
// their review.
func (s *Service) SendReviewReady(to, contactName, projectName, itemTitle, reviewURL string) error {
	data := ReviewReadyData{
		AppName:     "Framelight",
		ContactName: contactName,
		ProjectName: projectName,
		ItemTitle:   itemTitle,
		ReviewURL:   reviewURL,
	}

	subject := fmt.Sprintf("Ready for review: %s", itemTitle)
	html, err := renderTemplate(reviewReadyTemplate, data)
	if err != nil {
		return fmt.Errorf("render review-ready template: %w", err)
	}

	return s.SendHTMLEmail([]string{to}, subject, html)
}

// SendDecision notifies the agency inbox about a client decision.
func (s *Service) SendDecision(to, projectName, itemTitle, status, decidedBy string) error {
	data := DecisionData{
		AppName:     "Framelight",
		ProjectName: projectName,
		ItemTitle:   itemTitle,
		Status:      status,
		DecidedBy:   decidedBy,
	}

	subject := fmt.Sprintf("%s: %s", status, itemTitle)
	html, err := renderTemplate(decisionTemplate, data)
	if err != nil {
		return fmt.Errorf("render decision template: %w", err)
	}

	return s.SendHTMLEmail([]string{to}, subject, html)
}

func renderTemplate(tmpl string, data interface{}) (string, error) {
	t := template.Must(template.New("email").Parse(tmpl))
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const reviewReadyTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Ready for review</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { border-bottom: 2px solid #18181b; padding-bottom: 10px; margin-bottom: 20px; }
        .button { display: inline-block; padding: 12px 24px; background: #18181b; color: white; text-decoration: none; border-radius: 4px; margin: 20px 0; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
        .link { word-break: break-all; color: #2563eb; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.AppName}}</h1>
    </div>

    <h2>Hi {{.ContactName}},</h2>

    <p>A new cut for <strong>{{.ProjectName}}</strong> is ready for your review:</p>

    <p><strong>{{.ItemTitle}}</strong></p>

    <p>
        <a href="{{.ReviewURL}}" class="button">Review Now</a>
    </p>

    <p>Or copy and paste this link into your browser:</p>
    <p class="link">{{.ReviewURL}}</p>

    <div class="footer">
        <p>You are receiving this because you are the primary contact for this project.</p>
    </div>
</body>
</html>`

const decisionTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Review decision</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { border-bottom: 2px solid #18181b; padding-bottom: 10px; margin-bottom: 20px; }
        .status { background: #f4f4f5; padding: 12px; border-radius: 4px; margin: 20px 0; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.AppName}}</h1>
    </div>

    <h2>{{.ProjectName}}</h2>

    <p>{{.DecidedBy}} reviewed <strong>{{.ItemTitle}}</strong>:</p>

    <div class="status">
        <strong>{{.Status}}</strong>
    </div>

    <div class="footer">
        <p>Open the project in the portal for the full feedback thread.</p>
    </div>
</body>
</html>`
