// Package app initializes and runs the HTTP application service.
// It wires configuration, logging and routing, and handles graceful
// shutdown.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yemaster/vtix-ng/internal/config"
	"github.com/yemaster/vtix-ng/internal/logger"
	"github.com/yemaster/vtix-ng/internal/router"
)

const shutdownTimeout = 10 * time.Second

// App bundles the configuration and the HTTP handler of the service.
type App struct {
	cfg         *config.Config
	httpHandler http.Handler
}

// New loads the configuration, initializes the logger and assembles
// the router.
func New() (*App, error) {
	app := &App{}

	var err error
	app.cfg, err = config.New()
	if err != nil {
		return nil, err
	}

	if err = logger.Init(app.cfg.LogLevel); err != nil {
		return nil, err
	}

	app.httpHandler = router.New()

	return app, nil
}

// Run starts the HTTP server and blocks until it fails or a
// termination signal arrives, in which case the server is shut down
// gracefully.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Log.Infow("server running", "RunAddr", a.cfg.RunAddr)

	server := &http.Server{
		Addr:    a.cfg.RunAddr,
		Handler: a.httpHandler,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Log.Infoln("Received shutdown signal, exiting...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		return nil

	case err := <-serverErrCh:
		return fmt.Errorf("server error: %w", err)
	}
}

// Close finalizes resources used by App such as logging.
func (a *App) Close() {
	if err := logger.Sync(); err != nil {
		fmt.Println("Logger sync error:", err)
	}
}
