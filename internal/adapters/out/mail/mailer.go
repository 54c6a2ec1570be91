// Package mail sends delivery notification mails over SMTP and renders their
// HTML bodies from embedded templates.
package mail

import (
	"context"

	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer implements ports.Mailer using gomail.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	fromAddr string
	fromName string
}

// NewSMTPMailer creates a mailer that connects to the given SMTP server.
// All outgoing mail carries the given sender address and display name.
func NewSMTPMailer(host string, port int, username, password, fromAddr, fromName string) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(host, port, username, password),
		fromAddr: fromAddr,
		fromName: fromName,
	}
}

// Send delivers an HTML mail to a single recipient. The SMTP dial happens per
// message; the dispatcher's send rate is low enough that connection reuse is
// not worth the bookkeeping.
func (m *SMTPMailer) Send(ctx context.Context, to, toName, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromAddr, m.fromName)
	msg.SetAddressHeader("To", to, toName)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
