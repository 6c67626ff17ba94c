package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"github.com/domodwyer/mailyak/v3"
)

var (
	ErrMailerNotConfigured = errors.New("smtp mailer not configured")
	ErrMissingRecipient    = errors.New("missing recipient email")
)

// Mailer sends estimate documents over SMTP using mailyak. Configuration
// comes from SMTP_HOST, SMTP_PORT, SMTP_USERNAME, SMTP_PASSWORD and
// SMTP_FROM.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewMailerFromEnv reads the SMTP_* variables. It returns nil when SMTP_HOST
// is not set so callers can treat mailing as an optional feature.
func NewMailerFromEnv() *Mailer {
	host := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if host == "" {
		log.Printf("[documents][mailer] SMTP_HOST not set, mailing disabled")
		return nil
	}
	port := strings.TrimSpace(os.Getenv("SMTP_PORT"))
	if port == "" {
		port = "587"
	}
	return &Mailer{
		host:     host,
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

// SendWithAttachment delivers a plain-text message with one attachment. The
// send itself is synchronous; ctx is checked before dialing since mailyak
// does not take a context.
func (m *Mailer) SendWithAttachment(ctx context.Context, recipient, subject, body, attachName string, data []byte) error {
	if m == nil || m.host == "" {
		return ErrMailerNotConfigured
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return ErrMissingRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	mail := mailyak.New(fmt.Sprintf("%s:%s", m.host, m.port), auth)

	from := m.from
	if from == "" {
		from = m.username
	}
	mail.From(from)
	mail.To(recipient)
	mail.Subject(subject)
	mail.Plain().Set(body)
	if len(data) > 0 {
		mail.Attach(attachName, bytes.NewReader(data))
	}

	log.Printf("[documents][mailer] send start recipient=%s attachment=%s bytes=%d", recipient, attachName, len(data))
	if err := mail.Send(); err != nil {
		log.Printf("[documents][mailer] send failed recipient=%s err=%v", recipient, err)
		return err
	}
	log.Printf("[documents][mailer] send success recipient=%s", recipient)
	return nil
}
