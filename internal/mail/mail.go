// Package mail composes and delivers account mails (verification and password
// reset links).
package mail

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=mail.go -destination=mock_mail.go -package=mail

// Message is one outgoing mail.
type Message struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// Sender delivers a message or reports why it could not.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var ErrNoRecipient = errors.New("mail: no recipient")

// SMTPConfig addresses an SMTP relay.
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPSender delivers directly over SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	from := msg.From
	if from == "" {
		from = s.from
	}
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	return s.dialer.DialAndSend(m)
}

// LogSender only logs mails.  It stands in for SMTP in development.
type LogSender struct {
	log *zap.SugaredLogger
}

func NewLogSender(log *zap.SugaredLogger) *LogSender { return &LogSender{log: log} }

func (s *LogSender) Send(_ context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}
	s.log.Infow("mail not delivered, no smtp relay configured", "to", msg.To, "subject", msg.Subject, "text", msg.Text)
	return nil
}
