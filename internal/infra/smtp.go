package infra

import (
	"fmt"
	"net/smtp"

	"github.com/panteragalgo/awa-app/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for transactional email (welcome,
// activation, order receipts).
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendHTML sends an HTML email, optionally attaching a file (used for PDF
// order receipts).
func (m *Mailer) SendHTML(to, subject, html, attachPath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(html)

	if attachPath != "" {
		if _, err := e.AttachFile(attachPath); err != nil {
			return fmt.Errorf("mailer: attach file: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
