// Package server runs the HTTP API and its background jobs.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/vmunix/moviecat/internal/stats"
	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown.
const DefaultShutdownTimeout = 30 * time.Second

// Warmer refreshes statistics ahead of requests.
type Warmer interface {
	Statistics(ctx context.Context) stats.Result
}

// Config for the server runner.
type Config struct {
	Addr            string
	WarmInterval    time.Duration // 0 disables warming
	ShutdownTimeout time.Duration
}

// Runner manages the HTTP server and the statistics warmer.
type Runner struct {
	handler http.Handler
	warmer  Warmer
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner. warmer may be nil.
func NewRunner(handler http.Handler, warmer Warmer, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Runner{
		handler: handler,
		warmer:  warmer,
		config:  cfg,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve runs all components on ln.
// It blocks until the context is canceled or a component fails.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("http server stopped")
		return nil
	})

	if r.warmer != nil && r.config.WarmInterval > 0 {
		g.Go(func() error {
			r.warm(ctx)
			return nil
		})
	}

	return g.Wait()
}

// warm keeps the statistics slot populated until ctx is done.
func (r *Runner) warm(ctx context.Context) {
	log := r.logger.With("component", "warmer")
	ticker := time.NewTicker(r.config.WarmInterval)
	defer ticker.Stop()

	log.Info("warmer started", "interval", r.config.WarmInterval.String())
	r.warmOnce(ctx, log)

	for {
		select {
		case <-ctx.Done():
			log.Info("warmer stopped")
			return
		case <-ticker.C:
			r.warmOnce(ctx, log)
		}
	}
}

func (r *Runner) warmOnce(ctx context.Context, log *slog.Logger) {
	res := r.warmer.Statistics(ctx)
	log.Debug("statistics warmed", "source", res.Source, "count", len(res.Statistics))
}
