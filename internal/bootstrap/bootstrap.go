// Package bootstrap runs long-lived processes until a termination signal and
// then unwinds their resources.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout bounds the time all shutdown hooks share.
const DefaultShutdownTimeout = 10 * time.Second

// Hook releases one resource. Hooks receive a context that expires after the
// shutdown timeout.
type Hook func(ctx context.Context) error

type namedHook struct {
	name string
	fn   Hook
}

// App owns the shutdown hooks of a process.
type App struct {
	mu              sync.Mutex
	hooks           []namedHook
	logger          *zap.Logger
	shutdownTimeout time.Duration
	signals         []os.Signal
}

// New creates an App that stops on SIGINT or SIGTERM.
func New(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
}

// WithShutdownTimeout replaces DefaultShutdownTimeout. A non-positive value is ignored.
func (a *App) WithShutdownTimeout(d time.Duration) *App {
	if d > 0 {
		a.shutdownTimeout = d
	}
	return a
}

// OnShutdown registers fn under name. Hooks run in reverse registration order,
// so a resource opened later is closed before the ones it depends on.
func (a *App) OnShutdown(name string, fn Hook) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, namedHook{name: name, fn: fn})
}

// Run calls run with a context that is cancelled by a signal or by ctx.
// When run returns first its error is returned and the hooks still run.
// When the context ends first the hooks run and their joined errors are returned.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, a.signals...)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down", zap.Error(context.Cause(ctx)))
		return a.shutdown()
	case err := <-errCh:
		return errors.Join(err, a.shutdown())
	}
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		h := hooks[i]
		if err := h.fn(ctx); err != nil {
			a.logger.Error("shutdown hook failed", zap.String("hook", h.name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		a.logger.Debug("shutdown hook done", zap.String("hook", h.name))
	}
	return errors.Join(errs...)
}
