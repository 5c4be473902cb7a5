package app

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/recipegraph-backend/internal/data/graph"
	"github.com/yungbote/recipegraph-backend/internal/http"
	"github.com/yungbote/recipegraph-backend/internal/observability"
	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
	"github.com/yungbote/recipegraph-backend/internal/platform/neo4jdb"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Client   *neo4jdb.Client
	Metrics  *observability.Metrics
	Repos    Repos
	Services Services
	Server   *http.Server

	shutdownOTel func(context.Context) error
}

// NewLogger builds the process logger for cfg.Log.Mode.
func NewLogger(cfg Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// OpenStore connects to Neo4j. The returned metrics are nil when disabled.
func OpenStore(ctx context.Context, log *logger.Logger, cfg Config) (*neo4jdb.Client, *observability.Metrics, error) {
	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}
	client, err := neo4jdb.New(ctx, log, metrics, cfg.Neo4j)
	if err != nil {
		return nil, nil, fmt.Errorf("init neo4j: %w", err)
	}
	return client, metrics, nil
}

func New(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	shutdownOTel := observability.InitOTel(ctx, log, cfg.OTel)

	client, metrics, err := OpenStore(ctx, log, cfg)
	if err != nil {
		_ = shutdownOTel(ctx)
		return nil, err
	}

	reposet := wireRepos(client, log)
	serviceset := wireServices(log, metrics, reposet)
	handlerset := wireHandlers(log, cfg, serviceset, client)
	server := http.NewServer(routerConfig(log, cfg, metrics, handlerset))

	return &App{
		Log:          log,
		Cfg:          cfg,
		Client:       client,
		Metrics:      metrics,
		Repos:        reposet,
		Services:     serviceset,
		Server:       server,
		shutdownOTel: shutdownOTel,
	}, nil
}

// Bootstrap applies constraints and the full-text index, then seeds categories.
func (a *App) Bootstrap(ctx context.Context) error {
	if err := graph.ApplySchema(ctx, a.Client, a.Log); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if err := a.Services.Category.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	addr := fmt.Sprintf(":%d", a.Cfg.Server.Port)
	timeout := time.Duration(a.Cfg.Server.ShutdownTimeoutSeconds) * time.Second
	return a.Server.Run(ctx, addr, timeout)
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if a.Client != nil {
		if err := a.Client.Close(ctx); err != nil {
			a.Log.Warn("neo4j close failed", "error", err)
		}
	}
	if a.shutdownOTel != nil {
		if err := a.shutdownOTel(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	a.Log.Sync()
}
