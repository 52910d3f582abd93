package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/light-bringer/aptmart-service/internal/app/outbox/usecases/cleanup_events"
	"github.com/light-bringer/aptmart-service/internal/pkg/config"
	"github.com/light-bringer/aptmart-service/internal/pkg/logging"
	"github.com/light-bringer/aptmart-service/internal/services"
)

const (
	shutdownTimeout  = 15 * time.Second
	limiterIdleAfter = 10 * time.Minute
)

func main() {
	// 1. Load configuration from the environment (.env optional)
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "json").WithError(err).Fatal("invalid configuration")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config, log *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("database", cfg.SpannerDatabase).Info("starting aptmart service")

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Start the outbox relay
	go serviceOpts.Relay.Run(ctx, cfg.Outbox.PollInterval)

	// 4. Schedule outbox retention and rate limiter housekeeping
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Outbox.CleanupSchedule, func() {
		res, err := serviceOpts.Cleanup.Execute(ctx, &cleanup_events.Request{
			CompletedRetention: cfg.Outbox.CompletedRetention,
			FailedRetention:    cfg.Outbox.FailedRetention,
		})
		if err != nil {
			log.WithError(err).Error("outbox cleanup failed")
			return
		}
		log.WithField("deleted", res.Deleted).Info("outbox cleanup finished")
	}); err != nil {
		return fmt.Errorf("invalid OUTBOX_CLEANUP_SCHEDULE %q: %w", cfg.Outbox.CleanupSchedule, err)
	}
	if _, err := scheduler.AddFunc("@every 5m", func() {
		serviceOpts.Limiter.Sweep(time.Now().Add(-limiterIdleAfter))
	}); err != nil {
		return fmt.Errorf("failed to schedule limiter sweep: %w", err)
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	// 5. Serve HTTP
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           serviceOpts.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", httpServer.Addr).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 6. Graceful shutdown handling
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	log.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	serviceOpts.Hub.Close()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	return nil
}
