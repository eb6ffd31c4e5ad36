package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/p-n-ai/bootcamp-landing/internal/analytics"
	"github.com/p-n-ai/bootcamp-landing/internal/catalog"
	"github.com/p-n-ai/bootcamp-landing/internal/countdown"
	"github.com/p-n-ai/bootcamp-landing/internal/platform/cache"
	"github.com/p-n-ai/bootcamp-landing/internal/platform/config"
	"github.com/p-n-ai/bootcamp-landing/internal/platform/database"
	"github.com/p-n-ai/bootcamp-landing/internal/web"
)

const readyTimeout = 2 * time.Second

// healthCheck is a named readiness probe.
type healthCheck struct {
	name  string
	check func(ctx context.Context) error
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log))

	courses, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		slog.Error("failed to load catalog", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}

	// Graceful shutdown on SIGTERM/SIGINT.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var checks []healthCheck

	var events analytics.EventLogger = analytics.NewMemoryEventLogger()
	if cfg.Database.Enabled() {
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Migrate(ctx, analytics.Schema); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
		events = analytics.NewPostgresEventLogger(db.Pool)
		checks = append(checks, healthCheck{name: "database", check: db.HealthCheck})
	}

	var fragments cache.Fragments = cache.NewMemory(0)
	if cfg.Cache.Enabled() {
		rc, err := cache.NewRedis(ctx, cfg.Cache.URL, cfg.Cache.TTL)
		if err != nil {
			slog.Error("failed to connect to cache", "error", err)
			os.Exit(1)
		}
		defer rc.Close()
		fragments = rc
		checks = append(checks, healthCheck{name: "cache", check: rc.HealthCheck})
	}

	site := web.New(web.Options{
		Catalog:        courses,
		Events:         events,
		Fragments:      fragments,
		Countdown:      countdown.New(time.Now(), cfg.Countdown.Period),
		ShowDelay:      cfg.Transition.ShowDelay,
		HideDelay:      cfg.Transition.HideDelay,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newMux(site, checks...),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "courses", courses.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// newMux creates the HTTP router with health check endpoints and, when site
// is non-nil, the landing page routes.
func newMux(site *web.Server, checks ...healthCheck) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", handleReadyz(checks))
	if site != nil {
		site.Register(mux)
	}
	return mux
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func handleReadyz(checks []healthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		for _, hc := range checks {
			if err := hc.check(ctx); err != nil {
				slog.Warn("readiness check failed", "check", hc.name, "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"unavailable","check":"` + hc.name + `"}`))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready"}`))
	}
}
