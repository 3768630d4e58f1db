package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tallerguerrero/storefront/config"
	"github.com/tallerguerrero/storefront/internal/app"
	"github.com/tallerguerrero/storefront/internal/webserver"
)

func main() {
	cfg := config.Load()

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		zap.S().Fatalf("initialization failed: %v", err)
	}
	defer application.Release()

	server := webserver.NewWebServer(application)

	go func() {
		if err := server.Start(); err != nil {
			zap.S().Fatalf("web server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.S().Errorf("shutdown error: %v", err)
	}
}
