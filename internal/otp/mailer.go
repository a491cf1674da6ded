package otp

import (
	"fmt"
	"net/smtp"
)

// Mailer delivers a message to a single recipient. A nil Mailer on the
// Issuer disables delivery entirely.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
}

func NewSMTPMailer(host, port, user, pass string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.user, to, subject, body,
	)

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	addr := m.host + ":" + m.port

	return smtp.SendMail(addr, auth, m.user, []string{to}, []byte(msg))
}
