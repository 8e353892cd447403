// Package mailer: kirim email reset password lewat SMTP biasa.
package mailer

import (
	"fmt"
	"net/smtp"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config Config
}

func New(config Config) *Mailer {
	return &Mailer{config: config}
}

func (m *Mailer) Enabled() bool {
	return m.config.Host != ""
}

func (m *Mailer) send(to string, subject string, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.config.From, to, subject, body)

	addr := m.config.Host + ":" + m.config.Port
	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	return smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
}

// SendPasswordReset: link reset dikirim ke email user.
func (m *Mailer) SendPasswordReset(to string, resetURL string) error {
	body := "We received a request to reset your password.\n\n" +
		"Open the link below to choose a new one:\n" + resetURL + "\n\n" +
		"If you did not request this, you can ignore this email."
	return m.send(to, "Reset your password", body)
}
