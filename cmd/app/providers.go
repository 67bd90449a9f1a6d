package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/dawarpower/fitcoach-api/internal/domain/exercise"
	"github.com/dawarpower/fitcoach-api/internal/domain/mealplan"
	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
	"github.com/dawarpower/fitcoach-api/internal/domain/user"
	"github.com/dawarpower/fitcoach-api/internal/domain/wellness"
	"github.com/dawarpower/fitcoach-api/internal/infra/config"
	"github.com/dawarpower/fitcoach-api/internal/infra/exerciserepo"
	"github.com/dawarpower/fitcoach-api/internal/infra/provider"
	"github.com/dawarpower/fitcoach-api/internal/infra/schedulestore"
	"github.com/dawarpower/fitcoach-api/internal/infra/statefile"
	"github.com/dawarpower/fitcoach-api/internal/infra/userrepo"
)

// appState carries the persistence gateway together with the snapshot it
// reloaded at startup, so the stores and the wellness history share one read.
type appState struct {
	gateway  *statefile.Gateway
	snapshot statefile.Snapshot
}

func provideAppState(cfg *config.Config, logger *slog.Logger) (*appState, error) {
	gateway := statefile.New(cfg.Storage.StatePath)
	snapshot, report, err := gateway.Load()
	if err != nil {
		return nil, err
	}
	if report.SkippedSchedules > 0 || report.SkippedWellness > 0 {
		logger.Warn("state file contained malformed records",
			"path", cfg.Storage.StatePath,
			"skipped_schedules", report.SkippedSchedules,
			"skipped_wellness", report.SkippedWellness)
	}
	logger.Info("state reloaded",
		"schedules", len(snapshot.Schedules),
		"wellness_entries", len(snapshot.Wellness))
	return &appState{gateway: gateway, snapshot: snapshot}, nil
}

func provideScheduleStore(cfg *config.Config, state *appState, logger *slog.Logger) schedule.Store {
	if cfg.Cache.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return schedulestore.NewMemoryStore(state.snapshot.Schedules, state.gateway)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return schedulestore.NewMemoryStore(state.snapshot.Schedules, state.gateway)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("schedule valkey store enabled", "addr", cfg.Cache.Addr)
			return schedulestore.NewValkeyStore(client, "fitcoach:schedule")
		}
	}
	return schedulestore.NewMemoryStore(state.snapshot.Schedules, state.gateway)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func providePgxPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Database.DSN)
	if dsn == "" {
		logger.Info("database dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Database.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Database.MaxConns
	}
	if cfg.Database.MinConns > 0 {
		poolConfig.MinConns = cfg.Database.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideExerciseRepository(pool *pgxpool.Pool) exercise.Repository {
	if pool != nil {
		return exerciserepo.NewPostgresRepository(pool)
	}
	return exerciserepo.NewMemoryRepository()
}

func provideUserRepository(pool *pgxpool.Pool) user.Repository {
	if pool != nil {
		return userrepo.NewPostgresRepository(pool)
	}
	return userrepo.NewMemoryRepository()
}

func provideExerciseService(repo exercise.Repository, logger *slog.Logger) (exercise.Service, error) {
	svc := exercise.NewService(repo, logger)
	if err := svc.Seed(context.Background()); err != nil {
		return nil, err
	}
	return svc, nil
}

func provideUserService(repo user.Repository, exercises exercise.Service, logger *slog.Logger) (user.Service, error) {
	svc := user.NewService(repo, logger)
	if err := svc.Seed(context.Background(), exercises); err != nil {
		return nil, err
	}
	return svc, nil
}

func provideMealPlanConfig(cfg *config.Config) mealplan.Config {
	return mealplan.Config{BaselineCalories: cfg.Plan.BaselineCalories}
}

func provideWellnessConfig(cfg *config.Config) wellness.Config {
	return wellness.Config{HistoryLimit: cfg.Wellness.HistoryLimit}
}

func provideProviderClient(cfg *config.Config) *provider.Client {
	return provider.NewClient(cfg.Wellness.ProviderURLs)
}

func provideWellnessService(cfg wellness.Config, state *appState, client *provider.Client, logger *slog.Logger) wellness.Service {
	return wellness.NewService(cfg, state.snapshot.Wellness, client, state.gateway, logger)
}

func provideMetricSource(svc wellness.Service) schedule.MetricSource {
	return svc
}
