package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Mailer interface {
	Send(to string, subject string, body string) error
}

// SMTPMailer sends plain-text email via unauthenticated SMTP
// (Mailpit-compatible in development, a relay in production).
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(host string, port string, from string) *SMTPMailer {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@autoservice.local"
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
	}
}

func (m *SMTPMailer) Send(to string, subject string, body string) error {
	msg := buildMessage(m.from, to, subject, body)
	return smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
