package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	v1 "github.com/vmunix/moviecat/internal/api/v1"
	"github.com/vmunix/moviecat/internal/catalog"
	"github.com/vmunix/moviecat/internal/config"
	"github.com/vmunix/moviecat/internal/server"
	"github.com/vmunix/moviecat/internal/stats"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

// app is the wired daemon, ready to run.
type app struct {
	runner *server.Runner
	logger *slog.Logger
}

// build wires stores, services and the HTTP API from cfg.
func build(cfg *config.Config, logger *slog.Logger) (*app, error) {
	// === Stores (always created) ===
	store := catalog.NewStore(cfg.Catalog.Path, logger.With("component", "catalog"))

	// === Services (optional - nil if not configured) ===
	deps := v1.ServerDeps{Catalog: store}
	var statsService *stats.Service
	statsAttrs := []any{"stats", false}
	if cfg.Stats.URL != "" {
		client := stats.NewClient(cfg.Stats.URL, stats.WithTimeout(cfg.Stats.Timeout))
		cache := stats.NewCache(cfg.Stats.TTL)
		statsService = stats.NewService(client, cache, logger.With("component", "stats"))
		deps.Stats = statsService
		statsAttrs = []any{"stats", client.URL(), "stats_ttl", cache.TTL().String()}
	}

	// === HTTP Setup ===
	api, err := v1.New(deps, v1.Config{Version: version})
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	runnerCfg := server.Config{Addr: addr, WarmInterval: cfg.Stats.WarmInterval}

	// A nil *stats.Service must not become a non-nil Warmer.
	var warmer server.Warmer
	if statsService != nil {
		warmer = statsService
	}
	runner := server.NewRunner(logRequests(mux, logger), warmer, runnerCfg, logger.With("component", "server"))

	attrs := append([]any{"addr", addr, "catalog", cfg.Catalog.Path}, statsAttrs...)
	attrs = append(attrs, "log_level", cfg.Server.LogLevel)
	logger.Info("server starting", attrs...)
	return &app{runner: runner, logger: logger}, nil
}

// loadConfig resolves and loads the config file; an empty path is discovered.
func loadConfig(configPath string) (string, *config.Config, error) {
	path, err := config.Resolve(configPath)
	if err != nil {
		return "", nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", nil, fmt.Errorf("config: %w", err)
	}
	return path, cfg, nil
}

// checkConfig validates the config without starting anything.
func checkConfig(w io.Writer, configPath string) error {
	path, cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	statsDesc := "disabled"
	if cfg.Stats.URL != "" {
		statsDesc = cfg.Stats.URL
	}
	fmt.Fprintf(w, "config ok: %s (listen %s:%d, catalog %s, stats %s)\n",
		path, cfg.Server.Host, cfg.Server.Port, cfg.Catalog.Path, statsDesc)
	return nil
}

func runServer(configPath string) error {
	_, cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stdout, cfg.Server.LogLevel)

	a, err := build(cfg, logger)
	if err != nil {
		return err
	}

	// Cancel on interrupt; the runner shuts the HTTP server down gracefully.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.runner.Run(ctx); err != nil {
		return err
	}

	a.logger.Info("server stopped")
	return nil
}
