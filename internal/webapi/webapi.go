// Package webapi exposes the JSON API: the public catalog listing and
// appointment intake, and the session-guarded admin catalog management.
package webapi

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/tallerguerrero/storefront/internal/domain"
	"github.com/tallerguerrero/storefront/internal/store"
	"github.com/tallerguerrero/storefront/internal/uploads"
)

const sessionName = "storefront_session"

// Notifier is the outbound notification capability used on appointment
// creation. Configured reports whether delivery will even be attempted.
type Notifier interface {
	Configured() bool
	Notify(appt *domain.Appointment) (sent bool, err error)
}

// Handler bundles the request-scoped dependencies of every endpoint. All state
// is injected here once at startup.
type Handler struct {
	Products     store.ProductStore
	Appointments store.AppointmentStore
	Uploads      *uploads.Manager
	Notifier     Notifier
	AdminPass    string
}

// Register attaches all API routes to e.
func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/products", h.listProducts)
	api.POST("/appointments", h.createAppointment)
	api.POST("/admin/login", h.adminLogin)
	api.POST("/admin/logout", h.adminLogout)

	admin := api.Group("/admin", h.requireAdmin)
	admin.POST("/products", h.createProduct)
	admin.PUT("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
	admin.GET("/appointments", h.listAppointments)
}

// ok writes {"ok":true} merged with extra.
func ok(c echo.Context, extra map[string]interface{}) error {
	body := map[string]interface{}{"ok": true}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(http.StatusOK, body)
}

// failMessage writes {"ok":false,"message":...} used by the auth endpoints.
func failMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]interface{}{"ok": false, "message": message})
}

// failError writes {"ok":false,"error":...} used by the resource endpoints.
func failError(c echo.Context, status int, errText string) error {
	return c.JSON(status, map[string]interface{}{"ok": false, "error": errText})
}

// failValidation reports every failing rule at once.
func failValidation(c echo.Context, details []string) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"ok":      false,
		"error":   "Validación fallida",
		"details": details,
	})
}

func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(sessionName, c)
		if err == nil {
			if flag, _ := sess.Values["is_admin"].(bool); flag {
				return next(c)
			}
		}
		return failMessage(c, http.StatusForbidden, "Acceso denegado")
	}
}

func setAdminSession(c echo.Context, admin bool) error {
	// a stale or tampered cookie decodes to an error but still yields a fresh
	// session, so the error itself is not actionable here
	sess, _ := session.Get(sessionName, c)
	sess.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
	}
	if admin {
		sess.Values["is_admin"] = true
	} else {
		delete(sess.Values, "is_admin")
		sess.Options.MaxAge = -1
	}
	return sess.Save(c.Request(), c.Response())
}

// formFields returns the form values present in the request, multipart or
// urlencoded. Absent fields are simply missing from the map, which is what the
// partial update semantics rely on.
func formFields(c echo.Context) map[string]string {
	fields := map[string]string{}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for k, v := range form.Value {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
		return fields
	}
	if params, err := c.FormParams(); err == nil {
		for k, v := range params {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
	}
	return fields
}
