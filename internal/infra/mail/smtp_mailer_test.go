package mail

import (
	"context"
	"log/slog"
	"net/smtp"
	"testing"

	"marzan/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailerConfig() *config.Config {
	return &config.Config{
		SMTP: &config.SMTPConfig{
			Host:     "smtp.example.com",
			Port:     587,
			Username: "noreply@marzantaste.com",
			Password: "secret",
			From:     "Marzan Taste <noreply@marzantaste.com>",
		},
		Loyalty: &config.LoyaltyConfig{SiteURL: "https://marzantaste.com"},
	}
}

func TestNewSMTPMailer_MissingConfig(t *testing.T) {
	mailer, err := NewSMTPMailer(&config.Config{}, slog.Default())
	assert.Error(t, err)
	assert.Nil(t, mailer)
}

func TestSMTPMailer_SendLoyaltyCode(t *testing.T) {
	mailer, err := NewSMTPMailer(testMailerConfig(), slog.Default())
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := mailer.(*smtpMailer)
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg

		return nil
	}

	err = mailer.SendLoyaltyCode(context.Background(), "cliente@example.com", "ABC123")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@marzantaste.com", gotFrom)
	assert.Equal(t, []string{"cliente@example.com"}, gotTo)

	body := string(gotMsg)
	assert.Contains(t, body, "Subject: Seu Código de Fidelidade Marzan Taste")
	assert.Contains(t, body, "To: cliente@example.com")
	assert.Contains(t, body, "ABC123")
	assert.Contains(t, body, "https://marzantaste.com")
	assert.Contains(t, body, "Caixa Premium de Cookies")
}

func TestSMTPMailer_CancelledContext(t *testing.T) {
	mailer, err := NewSMTPMailer(testMailerConfig(), slog.Default())
	require.NoError(t, err)

	m := mailer.(*smtpMailer)
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		t.Fatal("send should not be called with a cancelled context")

		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = mailer.SendLoyaltyCode(ctx, "cliente@example.com", "ABC123")
	assert.Error(t, err)
}

func TestEnvelopeAddress(t *testing.T) {
	assert.Equal(t, "noreply@marzantaste.com", envelopeAddress("Marzan Taste <noreply@marzantaste.com>"))
	assert.Equal(t, "plain@example.com", envelopeAddress("plain@example.com"))
}
