package notifier

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Annamalai555/mernstack-project/config"
)

// Mailer sends the transactional emails triggered by registration.
type Mailer interface {
	SendWelcome(name, email string) error
	SendNewUserAlert(name, email string) error
}

// SMTPMailer delivers over plain SMTP (a Gmail app password in the
// default deployment).
type SMTPMailer struct {
	host       string
	port       int
	user       string
	pass       string
	adminEmail string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		user:       cfg.SMTPUser,
		pass:       cfg.SMTPPass,
		adminEmail: cfg.AdminEmail,
	}
}

func (m *SMTPMailer) SendWelcome(name, email string) error {
	body := fmt.Sprintf("Hello %s,\n\nThank you for registering!", name)
	return m.send(email, "Welcome to Our App", body)
}

func (m *SMTPMailer) SendNewUserAlert(name, email string) error {
	body := fmt.Sprintf("A new user has registered: %s (%s)", name, email)
	return m.send(m.adminEmail, "New User Registered", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
