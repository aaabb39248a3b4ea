// Package mail implements the outbound mailer over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"marzan/config"
	"marzan/internal/domain/service"

	"github.com/pkg/errors"
)

const codeEmailSubject = "Seu Código de Fidelidade Marzan Taste"

// smtpMailer implements service.Mailer using plain SMTP with AUTH PLAIN.
type smtpMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	siteURL  string
	logger   *slog.Logger

	// send is swappable so tests can capture the wire payload.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	siteURL := "https://marzantaste.com"
	if cfg.Loyalty != nil && cfg.Loyalty.SiteURL != "" {
		siteURL = cfg.Loyalty.SiteURL
	}

	return &smtpMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
		siteURL:  siteURL,
		logger:   logger,
		send:     smtp.SendMail,
	}, nil
}

// SendLoyaltyCode delivers the loyalty code email to the given address.
func (m *smtpMailer) SendLoyaltyCode(ctx context.Context, email, code string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg := buildCodeEmail(m.from, email, code, m.siteURL)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := m.send(addr, auth, envelopeAddress(m.from), []string{email}, msg); err != nil {
		return errors.Wrap(err, "failed to send loyalty code email")
	}

	m.logger.Info("Loyalty code email sent",
		slog.String("email", email),
	)

	return nil
}

// buildCodeEmail renders the full RFC 5322 message for a loyalty code.
func buildCodeEmail(from, to, code, siteURL string) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + codeEmailSubject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #8B4513;">Marzan Taste</h2>`)
	b.WriteString(`<p>Olá!</p>`)
	b.WriteString(`<p>Obrigado pela sua compra! Aqui está o seu código de fidelidade:</p>`)
	b.WriteString(`<div style="background-color: #FFF8F0; border: 2px dashed #8B4513; padding: 20px; text-align: center; margin: 20px 0;">`)
	b.WriteString(`<span style="font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #8B4513;">` + code + `</span>`)
	b.WriteString(`</div>`)
	b.WriteString(`<p>Acesse <a href="` + siteURL + `">` + siteURL + `</a> e insira o código para registrar sua compra no cartão fidelidade.</p>`)
	b.WriteString(`<p>A cada 10 compras você ganha uma <strong>Caixa Premium de Cookies</strong>!</p>`)
	b.WriteString(`<p style="color: #999; font-size: 12px;">Este código é de uso único e vinculado ao seu e-mail.</p>`)
	b.WriteString(`</div>`)

	return []byte(b.String())
}

// envelopeAddress extracts the bare address from a "Name <addr>" sender header.
func envelopeAddress(from string) string {
	if start := strings.Index(from, "<"); start != -1 {
		if end := strings.Index(from[start:], ">"); end != -1 {
			return from[start+1 : start+end]
		}
	}

	return from
}
