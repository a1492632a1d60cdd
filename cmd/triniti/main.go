package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	trhttp "github.com/triniti-dev/triniti-backend/internal/adapter/http"
	"github.com/triniti-dev/triniti-backend/internal/adapter/memjournal"
	trnats "github.com/triniti-dev/triniti-backend/internal/adapter/nats"
	"github.com/triniti-dev/triniti-backend/internal/adapter/otel"
	"github.com/triniti-dev/triniti-backend/internal/adapter/ristretto"
	"github.com/triniti-dev/triniti-backend/internal/adapter/ws"
	"github.com/triniti-dev/triniti-backend/internal/config"
	"github.com/triniti-dev/triniti-backend/internal/domain/task"
	"github.com/triniti-dev/triniti-backend/internal/logger"
	"github.com/triniti-dev/triniti-backend/internal/middleware"
	"github.com/triniti-dev/triniti-backend/internal/port/messagequeue"
	"github.com/triniti-dev/triniti-backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	slog.SetDefault(logger.New(cfg.Logging))
	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Logging.Level,
		"journal_capacity", cfg.Journal.Capacity,
	)

	ctx := context.Background()

	// --- Infrastructure ---

	shutdownTelemetry, err := otel.Init(ctx, cfg.Telemetry, cfg.Logging.Service)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	// Event publishing is optional; without a broker URL events are dropped.
	var queue messagequeue.Queue = messagequeue.Discard{}
	if cfg.NATS.URL != "" {
		natsQueue, err := trnats.Connect(ctx, cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("nats: %w", err)
		}
		queue = natsQueue
	}
	defer func() { _ = queue.Close() }()

	replayCache, err := ristretto.New(cfg.Idempotency.CacheSizeMB << 20)
	if err != nil {
		return fmt.Errorf("idempotency cache: %w", err)
	}
	defer replayCache.Close()

	metrics, err := otel.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	// --- Services ---

	hub := ws.NewHub()
	journal := memjournal.New(cfg.Journal.Capacity)
	sim := &task.Simulator{
		Latency:       cfg.Simulator.Latency,
		MaxCommandLen: cfg.Simulator.MaxCommandBytes,
	}
	executor := service.NewExecutor(journal, sim, queue, hub, metrics)
	history := service.NewHistory(journal, queue, hub)

	// --- HTTP ---

	limiter := middleware.NewRateLimiter(cfg.Rate.RequestsPerSecond, cfg.Rate.Burst)
	stopCleanup := limiter.StartCleanup(time.Minute, 10*time.Minute)
	defer stopCleanup()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(trhttp.CORS(cfg.Server.CORSOrigin))
	r.Use(trhttp.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(otel.HTTPMiddleware(cfg.Logging.Service))
	r.Use(limiter.Handler)
	r.Use(middleware.Idempotency(replayCache, cfg.Idempotency.TTL))

	r.Get("/ws", hub.HandleWS)
	trhttp.MountRoutes(r, trhttp.NewHandlers(executor, history))

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-done
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
