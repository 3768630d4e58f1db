package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tallerguerrero/storefront/internal/domain"
)

type loginPayload struct {
	Password string `json:"password"`
}

// adminLogin checks the shared admin secret and flags the session. There is a
// single credential, no per-admin identity.
func (h *Handler) adminLogin(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return failMessage(c, http.StatusBadRequest, "Solicitud inválida")
	}
	if payload.Password != h.AdminPass {
		return failMessage(c, http.StatusUnauthorized, "Contraseña incorrecta")
	}
	if err := setAdminSession(c, true); err != nil {
		zap.L().Error("failed to save admin session", zap.Error(err))
		return failMessage(c, http.StatusInternalServerError, "Error interno")
	}
	return ok(c, nil)
}

func (h *Handler) adminLogout(c echo.Context) error {
	if err := setAdminSession(c, false); err != nil {
		zap.L().Warn("failed to clear admin session", zap.Error(err))
	}
	return ok(c, nil)
}

// listAppointments is the admin follow-up view, most recent first.
func (h *Handler) listAppointments(c echo.Context) error {
	appts, err := h.Appointments.List(c.Request().Context())
	if err != nil {
		zap.L().Error("failed to list appointments", zap.Error(err))
		return failError(c, http.StatusInternalServerError, "Error al obtener citas")
	}
	if appts == nil {
		appts = []domain.Appointment{}
	}
	return ok(c, map[string]interface{}{"appointments": appts})
}
