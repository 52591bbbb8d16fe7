package builder

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// App is the HTTP surface over the contract and resignation pipelines.
type App struct {
	server          *http.Server
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

// Run serves until ctx is done, SIGINT/SIGTERM arrives or the listener fails.
func (a *App) Run(ctx context.Context) error {
	defer a.logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		a.logger.Error("HTTP server failed", zap.Error(err))
		return err
	case <-ctx.Done():
		a.logger.Info("Stop requested", zap.NamedError("cause", context.Cause(ctx)))
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	a.logger.Info("Draining in-flight requests", zap.Duration("timeout", a.shutdownTimeout))
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
		return err
	}

	a.logger.Info("Server stopped")
	return nil
}
