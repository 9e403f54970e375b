package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

type Email struct {
	FromName string
	To       string
	Subject  string
	Text     string
	HTML     string
}

// Mailer delivers a batch of emails over one relay connection.
type Mailer interface {
	Send(ctx context.Context, emails ...Email) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPMailer opens a connection per batch and closes it once the batch is
// sent.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(m.cfg.Timeout),
	}
	if m.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return mail.NewClient(m.cfg.Host, opts...)
}

// Verify dials and authenticates without sending anything.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	c, err := m.client()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	return c.Close()
}

func (m *SMTPMailer) Send(ctx context.Context, emails ...Email) error {
	if len(emails) == 0 {
		return nil
	}
	msgs := make([]*mail.Msg, 0, len(emails))
	for _, e := range emails {
		msg, err := m.message(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	c, err := m.client()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer c.Close()
	if err := c.Send(msgs...); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (m *SMTPMailer) message(e Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(e.FromName, m.cfg.From); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return nil, fmt.Errorf("to address %q: %w", e.To, err)
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(mail.TypeTextPlain, e.Text)
	if e.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, e.HTML)
	}
	return msg, nil
}
