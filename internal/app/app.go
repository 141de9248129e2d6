package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/adapter/postgres"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/adapter/postgres/photo"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/auth"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/config"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/metrics"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/service/retention"
	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, starts the retention scheduler and serves the admin API until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := retention.NewService(logger, photo.New(pool), metrics.NewRecorder(reg), cfg.Retention)

	scheduler := retention.NewScheduler(logger, svc, cfg.Retention)
	if err := scheduler.Start(ctx); err != nil {
		return fmt.Errorf("start retention scheduler: %w", err)
	}
	defer scheduler.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Admin:     rest.NewAdminHandler(svc, logger),
		Health:    rest.NewHealthHandler(pool, scheduler, BuildVersion()),
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Validator: auth.NewJWTManager(cfg.Auth),
		Observer:  metrics.NewHTTP(reg),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
