package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ChainPulse/internal/usecase"
	"ChainPulse/pkg/config"
	xhttp "ChainPulse/pkg/http"
	applogger "ChainPulse/pkg/logger"
)

// App runs the dashboard until interrupted.
type App struct {
	cfg        *config.Config
	dash       *usecase.Dashboard
	httpServer *xhttp.Server
	log        *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, dash *usecase.Dashboard, httpServer *xhttp.Server, log *applogger.Logger) *App {
	return &App{
		cfg:        cfg,
		dash:       dash,
		httpServer: httpServer,
		log:        log,
	}
}

// Run warms the snapshot cache, serves HTTP and blocks until SIGINT/SIGTERM,
// ctx cancellation or a listener error.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A broken table is reported on the page; it must not keep the server down.
	if _, err := a.dash.Snapshot(ctx); err != nil {
		a.log.Warn("initial snapshot failed", applogger.Error(err))
	}

	errCh := a.httpServer.Start()
	a.log.Info("dashboard started",
		applogger.String("addr", a.httpServer.Addr()),
		applogger.String("source", a.cfg.Source.Type),
		applogger.Int("window", a.cfg.Dashboard.Window),
	)

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err, ok := <-errCh:
		if ok && err != nil {
			runErr = err
		}
	}

	if err := a.httpServer.Stop(context.Background()); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		if runErr == nil {
			runErr = fmt.Errorf("stop dashboard: %w", err)
		}
	}
	a.log.Info("shutdown complete")
	return runErr
}
