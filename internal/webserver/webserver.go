// Package webserver hosts the echo instance: session middleware, the JSON API
// and the static mounts for uploaded images and the client bundle.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/tallerguerrero/storefront/internal/app"
	"github.com/tallerguerrero/storefront/internal/webapi"
)

type WebServer struct {
	root *echo.Echo
	app  *app.Application
}

func NewWebServer(application *app.Application) *WebServer {
	cfg := application.Config()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.SessionSecret))))

	handler := &webapi.Handler{
		Products:     application.Products(),
		Appointments: application.Appointments(),
		Uploads:      application.Uploads(),
		Notifier:     application.Mailer(),
		AdminPass:    cfg.AdminPass,
	}
	handler.Register(e)

	e.Static("/uploads", cfg.UploadsDir)
	e.Static("/public", "public")
	e.File("/", filepath.Join("public", "index.html"))
	e.File("/index.html", filepath.Join("public", "index.html"))

	return &WebServer{root: e, app: application}
}

// Echo exposes the underlying router, used by tests.
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

func (s *WebServer) Start() error {
	addr := fmt.Sprintf(":%d", s.app.Config().Port)
	zap.S().Infof("starting web server on %s", addr)
	err := s.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *WebServer) Shutdown(ctx context.Context) error {
	return s.root.Shutdown(ctx)
}
