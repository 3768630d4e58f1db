package webapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tallerguerrero/storefront/internal/domain"
	"github.com/tallerguerrero/storefront/internal/validate"
)

type appointmentPayload struct {
	Name        string `json:"name"`
	Whatsapp    string `json:"whatsapp"`
	CarModel    string `json:"carModel"`
	Description string `json:"description"`
	Notas       string `json:"notas"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// createAppointment records the request and then attempts the notification
// mail. Persistence success is decoupled from notification success: once the
// record is stored the response is ok:true regardless of mail outcome.
func (h *Handler) createAppointment(c echo.Context) error {
	var payload appointmentPayload
	if err := c.Bind(&payload); err != nil {
		return failError(c, http.StatusBadRequest, "Solicitud inválida")
	}

	details := validate.Appointment(validate.AppointmentInput{
		Name:        payload.Name,
		Whatsapp:    payload.Whatsapp,
		CarModel:    payload.CarModel,
		Description: payload.Description,
		Date:        payload.Date,
		Time:        payload.Time,
	})
	if len(details) > 0 {
		return failValidation(c, details)
	}

	appt := domain.Appointment{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(payload.Name),
		Whatsapp:    strings.TrimSpace(payload.Whatsapp),
		CarModel:    strings.TrimSpace(payload.CarModel),
		Description: strings.TrimSpace(payload.Description),
		Notes:       payload.Notas,
		Date:        strings.TrimSpace(payload.Date),
		Time:        strings.TrimSpace(payload.Time),
		CreatedAt:   time.Now(),
	}

	if err := h.Appointments.Create(c.Request().Context(), &appt); err != nil {
		zap.L().Error("failed to create appointment", zap.Error(err))
		return failError(c, http.StatusInternalServerError, "Error al crear cita")
	}

	if !h.Notifier.Configured() {
		return ok(c, map[string]interface{}{
			"emailed": false,
			"message": "SMTP no configurado. Revisa README para configurar.",
		})
	}
	sent, err := h.Notifier.Notify(&appt)
	if err != nil {
		return ok(c, map[string]interface{}{"emailed": false, "error": err.Error()})
	}
	return ok(c, map[string]interface{}{"emailed": sent})
}
