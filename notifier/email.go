package notifier

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/jordan-wright/email"
)

// Sender delivers a rendered message. Implementations report failure so
// the dispatcher can retry, but nothing upstream of the outbox ever sees
// those errors.
type Sender interface {
	Send(to, subject string, html []byte) error
}

// SMTPSender delivers over plain SMTP.
type SMTPSender struct {
	From     string
	Addr     string // host:port
	Host     string
	Username string
	Password string
}

func NewSMTPSenderFromEnv() (*SMTPSender, error) {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	from := os.Getenv("SMTP_FROM")
	if host == "" || from == "" {
		return nil, fmt.Errorf("smtp configuration missing")
	}
	if port == "" {
		port = "587"
	}
	return &SMTPSender{
		From:     from,
		Addr:     host + ":" + port,
		Host:     host,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}, nil
}

func (s *SMTPSender) Send(to, subject string, html []byte) error {
	e := email.NewEmail()
	e.From = s.From
	e.To = []string{to}
	e.Subject = subject
	e.HTML = html

	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}
	return e.Send(s.Addr, auth)
}
