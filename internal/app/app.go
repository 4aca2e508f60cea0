package app

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"vlogtagger/internal/config"
	"vlogtagger/internal/services"
	"vlogtagger/internal/store"
	"vlogtagger/internal/store/history"
	"vlogtagger/internal/store/primary"
	"vlogtagger/pkg/analyzer"
)

// App holds the wired-up application. The analysis engine and history
// are always available; VlogStore and VlogService are nil when no
// database DSN is configured, so pure-analysis commands work without
// Postgres.
type App struct {
	Config *config.Config
	Engine *analyzer.Engine

	VlogStore    store.VlogStore
	HistoryStore store.AnalysisHistoryStore
	JobClient    *asynq.Client

	AnalysisService *services.AnalysisService
	VlogService     *services.VlogService
}

// NewApp wires services from config.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{
		Config: cfg,
		Engine: analyzer.New(),
	}

	if err := app.initHistoryStore(); err != nil {
		return nil, err
	}
	if err := app.initVlogStore(ctx); err != nil {
		app.Close()
		return nil, err
	}
	app.initJobClient()
	app.initServices()
	return app, nil
}

func (a *App) initHistoryStore() error {
	if a.Config.History.Disabled {
		return nil
	}
	hs, err := history.Open(a.Config.History.Path)
	if err != nil {
		// History is best-effort; run without it rather than fail.
		log.WithError(err).Warn("analysis history unavailable, continuing without it")
		return nil
	}
	a.HistoryStore = hs
	return nil
}

func (a *App) initVlogStore(ctx context.Context) error {
	dsn := a.Config.Database.Primary.DSN
	if dsn == "" {
		log.Debug("no database DSN configured, vlog persistence disabled")
		return nil
	}
	vs, err := primary.NewVlogStore(ctx, dsn)
	if err != nil {
		return fmt.Errorf("init vlog store: %w", err)
	}
	if err := vs.EnsureSchema(ctx); err != nil {
		vs.Close()
		return fmt.Errorf("init vlog store: %w", err)
	}
	a.VlogStore = vs
	return nil
}

func (a *App) initJobClient() {
	a.JobClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     a.Config.Redis.Address,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})
}

func (a *App) initServices() {
	a.AnalysisService = services.NewAnalysisService(a.Engine, a.HistoryStore)

	if a.VlogStore != nil {
		a.VlogService = services.NewVlogService(a.VlogStore, a.Engine, services.AutoTagSettings{
			Enabled:              a.Config.AutoTag.Enabled,
			MinDescriptionLength: a.Config.AutoTag.MinDescriptionLength,
			MaxTags:              a.Config.AutoTag.MaxTags,
		})
	}
}

// RedisOpt exposes the Redis connection settings for the worker.
func (a *App) RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     a.Config.Redis.Address,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	}
}

// Close releases every held resource. Safe on a partially built App.
func (a *App) Close() {
	if a.JobClient != nil {
		if err := a.JobClient.Close(); err != nil {
			log.WithError(err).Warn("failed to close job client")
		}
	}
	if a.VlogStore != nil {
		a.VlogStore.Close()
	}
	if a.HistoryStore != nil {
		if err := a.HistoryStore.Close(); err != nil {
			log.WithError(err).Warn("failed to close history store")
		}
	}
}
