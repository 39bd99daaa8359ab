package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer sends transactional mail over SMTP. With no host configured it
// degrades to logging, which keeps local and test runs quiet about missing
// SMTP credentials.
type Mailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func NewMailer(host, port, user, pass, from string) *Mailer {
	if from == "" {
		from = "no-reply@chrenis.example"
	}
	return &Mailer{Host: host, Port: port, User: user, Pass: pass, From: from}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m == nil || m.Host == "" {
		log.Printf("[mail] skipped (no SMTP configured): to=%s subject=%q", to, subject)
		return nil
	}
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg))
}
