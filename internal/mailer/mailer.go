package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/atelierbarbier/reservation-api/internal/config"
	"github.com/atelierbarbier/reservation-api/internal/models"
)

// Mailer sends transactional mail over plain SMTP (Mailpit-compatible
// in dev, a relay in production).
type Mailer struct {
	addr string
	from string
}

// New returns nil when SMTP is not configured; callers treat a nil
// mailer as email disabled.
func New(cfg *config.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}

	return &Mailer{
		addr: fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort),
		from: cfg.SMTPFrom,
	}
}

func (m *Mailer) SendReservationConfirmation(ctx context.Context, r *models.Reservation) error {
	subject := confirmationSubject(r)
	body := confirmationBody(r)

	msg := buildMessage(m.from, r.ClientEmail, subject, body)
	return smtp.SendMail(m.addr, nil, m.from, []string{r.ClientEmail}, []byte(msg))
}

func (m *Mailer) SendReservationReminder(ctx context.Context, r *models.Reservation) error {
	subject := reminderSubject(r)
	body := reminderBody(r)

	msg := buildMessage(m.from, r.ClientEmail, subject, body)
	return smtp.SendMail(m.addr, nil, m.from, []string{r.ClientEmail}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
