package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/config"
	"github.com/sells-group/enrich-cli/internal/extract"
	"github.com/sells-group/enrich-cli/internal/fetcher"
	"github.com/sells-group/enrich-cli/internal/pipeline"
	"github.com/sells-group/enrich-cli/internal/reconcile"
	"github.com/sells-group/enrich-cli/internal/render"
	"github.com/sells-group/enrich-cli/internal/source"
	"github.com/sells-group/enrich-cli/internal/store"
)

// env bundles the wired pipeline and its gateway for one command run.
type env struct {
	Pipeline *pipeline.Pipeline
	Gateway  *store.Gateway
}

func (e *env) Close() {
	if err := e.Gateway.Close(); err != nil {
		zap.L().Warn("closing store", zap.Error(err))
	}
}

// openStore opens the configured durable store and runs migrations.
func openStore(ctx context.Context, c *config.Config) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch c.Store.Driver {
	case "sqlite":
		st, err = store.NewSQLite(c.Store.SQLitePath)
	case "postgres":
		st, err = store.NewPostgres(ctx, c.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: c.Store.MaxConns,
			MinConns: c.Store.MinConns,
		})
	default:
		return nil, eris.Errorf("unsupported store driver: %s", c.Store.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

// initGateway connects the persistence gateway, falling back to in-memory
// records when the store stays unreachable.
func initGateway(ctx context.Context) *store.Gateway {
	return store.Connect(ctx, func(ctx context.Context) (store.Store, error) {
		return openStore(ctx, cfg)
	}, cfg.Store.ConnectAttempts, time.Duration(cfg.Store.ConnectDelaySec)*time.Second)
}

// initPipeline wires the full enrichment pipeline from config.
func initPipeline(ctx context.Context) (*env, error) {
	f := fetcher.New(fetcher.Options{
		UserAgent:    cfg.Fetch.UserAgent,
		Timeout:      time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		MaxRetries:   cfg.Fetch.MaxRetries,
		RateLimiters: fetcher.DefaultRateLimiters(),
	})

	var renderer render.Renderer
	if cfg.Render.Enabled && render.Available() {
		renderer = render.NewChromeRenderer(
			time.Duration(cfg.Render.TimeoutSecs)*time.Second,
			cfg.Fetch.UserAgent,
		)
	} else {
		zap.L().Info("page rendering disabled, using plain fetches")
	}

	table := extract.DefaultTechTable()
	encyclopedia := source.NewEncyclopediaSource(f, cfg.Reference.APIURL, table)
	website := source.NewWebsiteSource(f, renderer, table)
	logos := source.NewLogoClient(f, cfg.Logo.BaseURL)

	gateway := initGateway(ctx)
	p := pipeline.New(encyclopedia, website, reconcile.New(logos), gateway, cfg.Batch)

	return &env{Pipeline: p, Gateway: gateway}, nil
}
