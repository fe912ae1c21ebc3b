package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mesa-pacing/internal/adapter/file"
	httpadapter "mesa-pacing/internal/adapter/http"
	"mesa-pacing/internal/adapter/logging"
	"mesa-pacing/internal/adapter/observability"
	"mesa-pacing/internal/adapter/postgres"
	redisadapter "mesa-pacing/internal/adapter/redis"
	"mesa-pacing/internal/adapter/scheduler"
	"mesa-pacing/internal/adapter/usecase"
	"mesa-pacing/internal/config"
	"mesa-pacing/internal/config/configs"
	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
	"mesa-pacing/internal/db"
	"mesa-pacing/internal/telemetry"
)

// runServe wires the pacing loop to its adapters and runs until SIGINT or
// SIGTERM, then stops the HTTP server and lets running evaluations finish.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Env)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("tracer shutdown", slog.Any("error", err))
		}
	}()

	store, watcher, closeSource, err := openConfigSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg, logger)

	var rdb *redis.Client
	if cfg.Redis.PublishDecisions || cfg.Redis.ConsumeEvents {
		if rdb, err = db.NewRedisClient(ctx, cfg.Redis); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
	}
	var surface port.BidSurface = logging.NewBidSurface(logger)
	if cfg.Redis.PublishDecisions {
		surface = redisadapter.NewBidSurface(rdb, cfg.Redis.DecisionKeyPrefix, cfg.Redis.DecisionChannel, cfg.Redis.DecisionTTL)
	}

	uc := usecase.NewPacingUseCase(store, surface, metrics, logger, useCaseOptions(cfg))
	sched := scheduler.New(uc, metrics, telemetry.Tracer(), logger, scheduler.Options{
		Interval:     cfg.Scheduler.Interval,
		Concurrency:  cfg.Scheduler.Concurrency,
		EvalTimeout:  cfg.Scheduler.EvalTimeout,
		SyncInterval: cfg.Scheduler.SyncInterval,
	})

	handler := httpadapter.NewHandler(uc, metrics.Handler(), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sched.Run(gctx) })
	g.Go(func() error { return watcher.Watch(gctx, uc) })
	if cfg.Redis.ConsumeEvents {
		stream := redisadapter.NewEventStream(rdb, cfg.Redis.Stream, cfg.Redis.Group, cfg.Redis.Consumer,
			cfg.Redis.BatchSize, cfg.Redis.Block, logger)
		g.Go(func() error { return stream.Run(gctx, uc) })
	}
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if serr := sched.Stop(shutdownCtx); serr != nil {
			logger.Warn("scheduler did not stop in time", slog.Any("error", serr))
		}
		err := srv.Shutdown(shutdownCtx)
		logger.Info("server gracefully stopped")
		return err
	})
	return g.Wait()
}

// openConfigSource returns the budget config store and its change watcher
// selected by CONFIG_SOURCE, and a func releasing their resources.
func openConfigSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.ConfigStore, port.ConfigWatcher, func(), error) {
	switch cfg.Source.Kind {
	case configs.SourceFile:
		store := file.NewConfigStore(cfg.Source.Path)
		if err := store.Load(); err != nil {
			if !errors.Is(err, domain.ErrInvalidConfig) {
				return nil, nil, nil, fmt.Errorf("budgets file: %w", err)
			}
			logger.Warn("budgets file has invalid entries", slog.Any("error", err))
		}
		return store, file.NewWatcher(store, cfg.Source.Debounce, logger), func() {}, nil
	default:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		listener := postgres.NewBudgetListener(cfg.Psql.Addr.String(), cfg.Psql.NotifyChannel, logger)
		return postgres.NewBudgetRepository(pool), listener, pool.Close, nil
	}
}

func useCaseOptions(cfg config.Config) usecase.Options {
	opts := usecase.DefaultOptions()
	opts.Engine = usecase.EngineParams{
		DeadBand:         cfg.Pacing.DeadBand,
		Gain:             cfg.Pacing.Gain,
		MaxStep:          cfg.Pacing.MaxStep,
		ThrottleGain:     cfg.Pacing.ThrottleGain,
		ThrottleMaxStep:  cfg.Pacing.ThrottleMaxStep,
		AnomalyWindow:    cfg.Anomaly.Window,
		AnomalyMultiple:  cfg.Anomaly.Multiple,
		AnomalyThreshold: cfg.Anomaly.Threshold,
		AnomalyHold:      cfg.Anomaly.Hold,
		SlopeFloor:       cfg.Pacing.SlopeFloor,
	}
	opts.DefaultMultiplier = cfg.Pacing.DefaultMultiplier
	opts.DefaultThrottle = cfg.Pacing.DefaultThrottle
	opts.WindowCapacity = cfg.Ingest.WindowCapacity
	opts.HistoryCapacity = cfg.Ingest.HistoryCapacity
	opts.PendingCapacity = cfg.Ingest.PendingCapacity
	opts.PendingGrace = cfg.Ingest.PendingGrace
	return opts
}
