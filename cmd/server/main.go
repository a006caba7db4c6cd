package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadapter "netprofile/internal/adapters/http"
	"netprofile/internal/adapters/memory"
	pg "netprofile/internal/adapters/postgres"
	"netprofile/internal/config"
	"netprofile/internal/observability"
	"netprofile/internal/ports"
	"netprofile/internal/services/assessments"
	"netprofile/internal/services/content"
	"netprofile/internal/services/organizations"
	"netprofile/internal/services/reports"
	"netprofile/internal/workers/scorerunner"
)

type store interface {
	ports.AssessmentRepository
	ports.SummaryRepository
	ports.JobRepository
}

func main() {
	cfg, err := config.Load()
	logger := observability.NewLogger(observability.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo store
	if cfg.UsesDatabase() {
		db, err := pg.Connect(ctx, cfg.DatabaseURL, poolOptions(cfg))
		if err != nil {
			logger.Error("db connect", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Migrate(ctx, "up"); err != nil {
			logger.Error("migrate", "error", err)
			os.Exit(1)
		}
		repo = db
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		repo = memory.New()
	}

	catalog, err := content.New(cfg.DefaultLanguage)
	if err != nil {
		logger.Error("content catalog", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	runner := &scorerunner.Runner{
		Jobs:        repo,
		Assessments: repo,
		Processor:   scorerunner.Processor{Repo: repo, Metrics: metrics},
		Metrics:     metrics,
		Logger:      logger.Component("scorerunner"),
	}
	srv := httpadapter.New(
		assessments.New(repo, catalog, metrics, logger),
		reports.New(repo, catalog),
		organizations.New(repo),
		catalog,
		runner,
		logger,
	)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if err := runner.Run(ctx, cfg.ScoringWorkers, cfg.PollInterval); err != nil {
			logger.Error("scoring workers stopped", "error", err)
		}
	}()
	logger.Info("scoring workers started", "workers", cfg.ScoringWorkers, "poll_interval", cfg.PollInterval)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	logger.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
		}
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
	<-workersDone
}

func poolOptions(cfg config.Config) pg.PoolOptions {
	return pg.PoolOptions{
		MaxConns:        int32(cfg.DBMaxConns),
		MinConns:        int32(cfg.DBMinConns),
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	}
}
