package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// Mailer delivers a composed report to the configured recipient.
type Mailer interface {
	SendReport(ctx context.Context, r Report) error
}

// SMTPMailer sends reports through an SMTP relay with STARTTLS and plain
// auth, the transport the Gmail defaults expect.
type SMTPMailer struct {
	from      string
	recipient string
	client    *gomail.Client
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string
	Timeout   time.Duration
}

func NewSMTP(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("mail: client setup: %w", err)
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &SMTPMailer{from: from, recipient: cfg.Recipient, client: client}, nil
}

// SendReport sends exactly one email. There is no fallback channel; the
// caller treats an error here as a fatal run failure.
func (m *SMTPMailer) SendReport(ctx context.Context, r Report) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mail: from address: %w", err)
	}
	if err := msg.To(m.recipient); err != nil {
		return fmt.Errorf("mail: recipient address: %w", err)
	}
	msg.Subject(r.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, r.Body)
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	return nil
}
