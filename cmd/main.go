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

	"newsletter-dispatch/internal/adapter/broker"
	httpadapter "newsletter-dispatch/internal/adapter/http"
	"newsletter-dispatch/internal/adapter/mailer"
	"newsletter-dispatch/internal/adapter/memory"
	"newsletter-dispatch/internal/adapter/postgres"
	"newsletter-dispatch/internal/adapter/usecase"
	"newsletter-dispatch/internal/config"
	"newsletter-dispatch/internal/config/configs"
	"newsletter-dispatch/internal/core/port"
	"newsletter-dispatch/internal/db"
	"newsletter-dispatch/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

// main is the entry point of the newsletter dispatcher. It loads
// configuration, wires the store and delivery drivers, then either performs
// a single run (run-once mode) or starts the hourly scheduler and the
// operator HTTP server. On a termination signal it stops accepting new runs
// and waits up to shutdownTimeout for the running one before cancelling it.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	loc, err := cfg.Dispatch.Location()
	if err != nil {
		logger.Error("invalid time zone", slog.Any("error", err))
		return
	}
	clock := usecase.SystemClock{Location: loc}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		campaigns   port.CampaignRepository
		subscribers port.SubscriberRepository
	)
	switch cfg.Dispatch.Store {
	case configs.StorePostgres:
		// Optionally run migrations if configured.
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			now := clock.Now()
			if err = db.Seed(ctx, pool, now, now.Hour()); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				return
			}
			logger.Info("demo data seeded")
		}
		campaigns = postgres.NewCampaignRepository(pool)
		subscribers = postgres.NewSubscriberRepository(pool)

	case configs.StoreMemory:
		store := memory.NewStore()
		now := clock.Now()
		for _, c := range db.DemoCampaigns(now, now.Hour()) {
			store.PutCampaign(c)
		}
		for _, s := range db.DemoSubscribers(now) {
			store.PutSubscriber(s)
		}
		logger.Warn("using in-memory store, send history is lost on exit")
		campaigns, subscribers = store, store
	}

	var delivery port.Delivery
	switch cfg.Delivery.Driver {
	case configs.DeliverySMTP:
		delivery, err = mailer.NewSMTPSender(cfg.SMTP, logger)
		if err != nil {
			logger.Error("smtp setup error", slog.Any("error", err))
			return
		}
	case configs.DeliveryAMQP:
		publisher, err := broker.Dial(cfg.AMQP, logger)
		if err != nil {
			logger.Error("broker connection error", slog.Any("error", err))
			return
		}
		defer publisher.Close()
		delivery = publisher
	default:
		delivery = mailer.NewLogSender(logger)
	}
	if cfg.Delivery.RatePerSecond > 0 {
		delivery = mailer.NewThrottled(delivery, cfg.Delivery.RatePerSecond, cfg.Delivery.Burst)
	}
	logger.Info("dispatcher configured",
		slog.String("store", cfg.Dispatch.Store),
		slog.String("delivery", cfg.Delivery.Driver),
		slog.String("time_zone", loc.String()),
	)

	svc := usecase.NewDispatchUseCase(campaigns, subscribers, delivery, logger,
		usecase.WithClock(clock),
		usecase.WithConcurrency(cfg.Dispatch.Concurrency),
		usecase.WithSender(cfg.Dispatch.FromAddress, cfg.Dispatch.FromName),
		usecase.WithAttachmentsLabel(cfg.Dispatch.AttachmentsLabel),
	)

	sched, err := scheduler.New(cfg.Dispatch.Schedule, loc, svc, cfg.Dispatch.RunTimeout, logger)
	if err != nil {
		logger.Error("scheduler setup error", slog.Any("error", err))
		return
	}

	if cfg.Dispatch.RunOnce {
		if _, err = sched.RunNow(ctx); err != nil {
			logger.Error("dispatch run failed", slog.Any("error", err))
			return
		}
		exitCode = 0
		return
	}

	sched.Start(ctx)
	if cfg.Dispatch.RunOnStart {
		sched.Trigger()
	}

	var srv *http.Server
	if cfg.HTTP.Enabled {
		handler := httpadapter.NewHandler(svc, logger, cfg.Dispatch.RunTimeout)
		srv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:           handler.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server error", slog.Any("error", err))
				cancel()
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if srv != nil {
		if err = srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			exitCode = 1
		} else {
			logger.Info("server gracefully stopped")
		}
	}
	if err = sched.Stop(shutdownCtx); err != nil {
		logger.Error("scheduler shutdown error", slog.Any("error", err))
		exitCode = 1
	}
}
