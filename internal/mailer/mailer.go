// Package mailer sends the best-effort appointment notification mail. Sending
// is fully decoupled from persistence: the caller records the appointment
// first and only reports whether the notification went out.
package mailer

import (
	"crypto/tls"
	"fmt"
	"html"
	"strings"
	"time"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/tallerguerrero/storefront/config"
	"github.com/tallerguerrero/storefront/internal/domain"
)

// Mailer delivers appointment notifications to the configured admin address
// over SMTP. With an incomplete SMTP configuration every Notify call is a
// no-op reporting "not sent".
type Mailer struct {
	smtp  config.SMTPConfig
	admin string
}

func New(smtp config.SMTPConfig, adminEmail string) *Mailer {
	return &Mailer{smtp: smtp, admin: adminEmail}
}

// Configured reports whether enough SMTP settings are present to attempt
// delivery. Host, user and password are all required.
func (m *Mailer) Configured() bool {
	return m.smtp.Host != "" && m.smtp.User != "" && m.smtp.Pass != ""
}

// Notify sends the new-appointment mail. It returns (false, nil) when SMTP is
// not configured, (false, err) when sending fails and (true, nil) on success.
func (m *Mailer) Notify(appt *domain.Appointment) (bool, error) {
	if !m.Configured() {
		zap.L().Warn("SMTP not configured, appointment saved without notification",
			zap.String("id", appt.ID))
		return false, nil
	}

	from := m.smtp.From
	if from == "" {
		from = m.smtp.User
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", m.admin)
	msg.SetHeader("Subject", fmt.Sprintf("Nueva cita: %s - %s %s", appt.Name, appt.Date, appt.Time))
	msg.SetBody("text/html", renderBody(appt))

	dialer := gomail.NewDialer(m.smtp.Host, m.smtp.Port, m.smtp.User, m.smtp.Pass)
	dialer.SSL = m.smtp.Secure
	dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	if err := dialer.DialAndSend(msg); err != nil {
		zap.L().Warn("failed to send appointment mail", zap.String("id", appt.ID), zap.Error(err))
		return false, err
	}
	return true, nil
}

func renderBody(appt *domain.Appointment) string {
	var b strings.Builder
	b.WriteString("<h2>Nueva cita - Refaccionaria y Taller Guerrero</h2>")
	row(&b, "Cliente", appt.Name)
	row(&b, "WhatsApp", appt.Whatsapp)
	row(&b, "Modelo del vehículo", appt.CarModel)
	row(&b, "Tipo de servicio", appt.Description)
	if appt.Notes != "" {
		row(&b, "Notas adicionales", appt.Notes)
	}
	row(&b, "Fecha", appt.Date)
	row(&b, "Hora", appt.Time)
	b.WriteString("<hr>")
	fmt.Fprintf(&b, `<p style="color: #666; font-size: 0.9em;">Cita recibida: %s</p>`,
		time.Now().Format("02/01/2006 15:04"))
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
}
