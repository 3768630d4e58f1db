package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallerguerrero/storefront/config"
	"github.com/tallerguerrero/storefront/internal/domain"
)

func TestConfigured(t *testing.T) {
	cases := []struct {
		name string
		smtp config.SMTPConfig
		want bool
	}{
		{"empty", config.SMTPConfig{}, false},
		{"host only", config.SMTPConfig{Host: "smtp.gmail.com"}, false},
		{"missing pass", config.SMTPConfig{Host: "smtp.gmail.com", User: "taller"}, false},
		{"missing host", config.SMTPConfig{User: "taller", Pass: "secreto"}, false},
		{"complete", config.SMTPConfig{Host: "smtp.gmail.com", User: "taller", Pass: "secreto"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, New(tc.smtp, "admin@example.com").Configured())
		})
	}
}

func TestNotifyUnconfiguredIsNoOp(t *testing.T) {
	m := New(config.SMTPConfig{}, "admin@example.com")
	sent, err := m.Notify(&domain.Appointment{ID: "a1", Name: "Ana"})
	require.NoError(t, err)
	require.False(t, sent)
}

func TestRenderBody(t *testing.T) {
	appt := &domain.Appointment{
		Name:        "Ana <script>",
		Whatsapp:    "5551234567",
		CarModel:    "Tsuru 2004",
		Description: "Afinación",
		Date:        "2026-09-01",
		Time:        "10:00",
	}

	body := renderBody(appt)
	assert.Contains(t, body, "Refaccionaria y Taller Guerrero")
	assert.Contains(t, body, "Ana &lt;script&gt;")
	assert.Contains(t, body, "Tsuru 2004")
	assert.NotContains(t, body, "Notas adicionales")

	appt.Notes = "ruido al arrancar"
	assert.Contains(t, renderBody(appt), "Notas adicionales")
}
