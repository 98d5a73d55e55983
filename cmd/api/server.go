package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pressroom-backend/pkg/container"
	"pressroom-backend/pkg/logger"
)

// Serve starts the HTTP server and blocks until shutdown completes.
func Serve() error {
	ctx := context.Background()

	c, err := container.New(ctx)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	router := SetupRouter(c)

	server := &http.Server{
		Addr:         ":" + c.Config.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", map[string]interface{}{
			"port": c.Config.App.Port,
			"env":  c.Config.App.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutdown signal received", map[string]interface{}{"signal": sig.String()})
	}

	// In-flight requests get a bounded window to drain; after that the
	// server is torn down regardless.
	shutdownCtx, cancel := context.WithTimeout(ctx, c.Config.App.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped", nil)
	return nil
}
