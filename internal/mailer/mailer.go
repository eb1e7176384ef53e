package mailer

import (
	"context"
	"fmt"

	"github.com/newscoope/content-api/internal/config"
	"github.com/newscoope/content-api/internal/models"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Sender delivers staff notifications
type Sender interface {
	SendApplicationNotice(ctx context.Context, app *models.AuthorApplication, resumePath string) error
}

// smtpSender sends mail through the configured SMTP relay
type smtpSender struct {
	cfg *config.SMTPConfig
	log zerolog.Logger
}

// New creates an SMTP-backed sender
func New(cfg *config.SMTPConfig, log zerolog.Logger) Sender {
	return &smtpSender{
		cfg: cfg,
		log: log.With().Str("component", "mailer").Logger(),
	}
}

// SendApplicationNotice emails the staff address about a new author
// application, linking the stored resume
func (s *smtpSender) SendApplicationNotice(ctx context.Context, app *models.AuthorApplication, resumePath string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.User)
	m.SetHeader("To", s.cfg.Recipient)
	m.SetHeader("Subject", "New Author Application")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>New Author Application</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Mobile:</strong> %s</p>
		<p><strong>Bio:</strong> %s</p>
		<p><strong>Resume:</strong> <a href="%s">View Resume</a></p>`,
		app.Name, app.Email, app.Mobile, app.Bio, resumePath))

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)

	// gomail has no context support; bound the send with the caller's
	// deadline instead of blocking the request indefinitely
	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send notification: %w", err)
		}
		s.log.Info().Str("to", s.cfg.Recipient).Msg("Application notification sent")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notification send cancelled: %w", ctx.Err())
	}
}
