// Package mail delivers contact-form messages to the site owner.
//
// The handler depends on the Mailer interface, not on SMTP: tests swap in a
// recording fake, and a site without SMTP configured gets a logging no-op
// instead of broken behaviour.
package mail

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Mailer sends one contact-form message. name is what the visitor typed into
// the name field (may be empty), replyTo their address (may be empty), and
// message the body.
type Mailer interface {
	Send(name, replyTo, message string) error
}

// SMTPMailer delivers messages over SMTP using gomail.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

// NewSMTPMailer creates a mailer that sends from `from` to the site owner's
// address `to` via the given SMTP server.
func NewSMTPMailer(host string, port int, username, password, from, to string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

// Send dials the SMTP server and delivers one message. Synchronous — the
// contact handler calls this inline and a personal site's mail volume does
// not justify a queue.
func (m *SMTPMailer) Send(name, replyTo, message string) error {
	if name == "" {
		name = "anonymous"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	if replyTo != "" {
		msg.SetHeader("Reply-To", replyTo)
	}
	msg.SetHeader("Subject", fmt.Sprintf("Contact form message from %s", name))
	msg.SetBody("text/plain", fmt.Sprintf("From: %s\n\n%s", name, message))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: sending contact message: %w", err)
	}
	return nil
}

// LogMailer is the stand-in used when no SMTP server is configured: it logs
// the message instead of sending it, so local development works without a
// mail server.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(name, replyTo, message string) error {
	m.logger.Info("contact message (mail disabled)",
		slog.String("name", name),
		slog.String("reply_to", replyTo),
		slog.String("message", message),
	)
	return nil
}
