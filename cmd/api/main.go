// Package main is the entry point for the ELD logbook API server.
// Its sole responsibility is wiring dependencies together and starting the server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pkordes/eld-logbook/internal/config"
	"github.com/pkordes/eld-logbook/internal/handler"
	"github.com/pkordes/eld-logbook/internal/hos"
	"github.com/pkordes/eld-logbook/internal/metrics"
	"github.com/pkordes/eld-logbook/internal/middleware"
	"github.com/pkordes/eld-logbook/internal/remote"
	"github.com/pkordes/eld-logbook/internal/repo"
	"github.com/pkordes/eld-logbook/internal/service"
	"github.com/pkordes/eld-logbook/migrations"
	"github.com/pkordes/eld-logbook/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// --- Log store --------------------------------------------------------
	session := remote.NewHTTPClient(cfg.HTTPTimeout)
	store, closeStore, err := openStore(context.Background(), cfg, session, logger)
	if err != nil {
		slog.Error("failed to open log store", "store", cfg.LogStore, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// --- Engine -----------------------------------------------------------
	engine := hos.New(hos.Options{
		Store:           store,
		Location:        cfg.Location,
		MaxDrivingHours: cfg.MaxDrivingHours,
		Logger:          logger,
		Metrics:         m,
	})
	unsubscribe := engine.Subscribe(func(c hos.Change) {
		logger.Debug("engine state changed", "kind", c.Kind, "at", c.At)
	})
	defer unsubscribe()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	if err := engine.Seed(seedCtx); err != nil {
		slog.Warn("could not load previous daily logs, starting empty", "error", err)
	} else {
		slog.Info("daily logs loaded", "count", len(engine.Logs()))
	}
	cancelSeed()

	// --- Services ---------------------------------------------------------
	routes := service.NewRouteService(remote.NewRoutePlanner(cfg.APIBaseURL, session), engine)
	exports := service.NewExportService(remote.NewExporter(cfg.APIBaseURL, session), engine, nil, cfg.Location, logger)
	srv := handler.NewServer(engine, routes, exports, spec.OpenAPI, logger)

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → Logger → Metrics → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetrics(m))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", metrics.Handler(reg))
	r.Mount("/", srv.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Writes allow for a full external call (route planning, export).
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "store", cfg.LogStore)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore builds the configured daily log store. For Postgres it opens the
// pool, checks connectivity and applies pending migrations.
func openStore(ctx context.Context, cfg config.Config, session *http.Client, logger *slog.Logger) (hos.LogStore, func(), error) {
	if cfg.LogStore != config.StorePostgres {
		logger.Info("using remote log service", "url", cfg.LogServiceURL)
		return remote.NewLogService(cfg.LogServiceURL, session), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established")

	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		pool.Close()
		return nil, nil, fmt.Errorf("create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		db.Close()
		pool.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations applied", "count", len(results))

	return repo.NewDailyLogRepo(pool), func() {
		db.Close()
		pool.Close()
	}, nil
}
