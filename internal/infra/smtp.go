package infra

import (
	"errors"
	"fmt"
	"net/smtp"

	"github.com/lennonhrmn/AWI-Mobile/internal/config"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog/log"
)

var ErrMailDisabled = errors.New("l'envoi d'e-mails n'est pas configuré")

// Mailer sends payout statements through the configured SMTP relay.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	enabled  bool
	breaker  *Breaker

	send func(e *email.Email, addr string, auth smtp.Auth) error
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		enabled:  cfg.MailEnabled(),
		breaker:  NewBreaker(MailBreakerConfig()),
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// BreakerState reports whether the relay is currently being skipped.
func (m *Mailer) BreakerState() BreakerState { return m.breaker.State() }

// SendPayoutStatement mails the statement PDF to the seller.
func (m *Mailer) SendPayoutStatement(to, subject, body, pdfPath string) error {
	if !m.enabled {
		return ErrMailDisabled
	}
	e := m.newMessage(to, subject, body)
	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: attach PDF: %w", err)
		}
	}
	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	err := m.breaker.Execute(func() error { return m.send(e, m.addr, auth) })
	if err != nil {
		log.Warn().Str("to", to).Str("breaker", m.breaker.State().String()).Err(err).Msg("statement mail not sent")
		return fmt.Errorf("mailer: %w", err)
	}
	log.Info().Str("to", to).Msg("statement mailed")
	return nil
}

func (m *Mailer) newMessage(to, subject, body string) *email.Email {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)
	return e
}
