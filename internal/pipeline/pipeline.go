// Package pipeline orchestrates the per-company enrichment flow and batch
// runs over company lists.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/enrich-cli/internal/config"
	"github.com/sells-group/enrich-cli/internal/model"
	"github.com/sells-group/enrich-cli/internal/reconcile"
	"github.com/sells-group/enrich-cli/internal/source"
	"github.com/sells-group/enrich-cli/internal/store"
)

// Pipeline wires the source adapters, reconciler, and persistence gateway
// into the per-company enrichment flow.
type Pipeline struct {
	encyclopedia source.Source
	website      source.Source
	reconciler   *reconcile.Reconciler
	gateway      *store.Gateway
	batch        config.BatchConfig
}

// New creates a Pipeline.
func New(encyclopedia, website source.Source, rec *reconcile.Reconciler, gw *store.Gateway, batch config.BatchConfig) *Pipeline {
	return &Pipeline{
		encyclopedia: encyclopedia,
		website:      website,
		reconciler:   rec,
		gateway:      gw,
		batch:        batch,
	}
}

// BatchResult summarizes one batch run.
type BatchResult struct {
	RunID     string
	Processed int
	Skipped   int
}

// Run enriches a single company end to end: both sources, merge, upsert.
// Source misses degrade the record, only cancellation aborts it.
func (p *Pipeline) Run(ctx context.Context, name string) (*model.CompanyRecord, error) {
	if len(name) <= 1 {
		return nil, eris.Errorf("pipeline: invalid company name %q", name)
	}

	log := zap.L().With(zap.String("company", name))
	log.Info("enriching company")

	enc, err := p.encyclopedia.Resolve(ctx, name)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: encyclopedia %s", name)
	}

	if err := sleep(ctx, p.batch.SourceDelay()); err != nil {
		return nil, err
	}

	web, err := p.website.Resolve(ctx, name)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: website %s", name)
	}

	rec := p.reconciler.Merge(ctx, name, enc, web, time.Now().UTC())
	p.gateway.Upsert(ctx, rec)

	log.Info("company enriched",
		zap.Strings("sources", rec.Sources),
		zap.Int("tech_count", len(rec.TechStack)),
	)
	return &rec, nil
}

// RunBatch enriches each company in order. Invalid names are skipped with
// a warning, not fatal. Companies run sequentially with a pacing delay
// unless max_concurrent_companies allows parallelism.
func (p *Pipeline) RunBatch(ctx context.Context, names []string) (*BatchResult, error) {
	result := &BatchResult{RunID: uuid.New().String()}
	log := zap.L().With(zap.String("run_id", result.RunID))
	log.Info("starting batch", zap.Int("companies", len(names)))

	var valid []string
	for _, name := range names {
		if len(name) <= 1 {
			log.Warn("skipping invalid company name", zap.String("name", name))
			result.Skipped++
			continue
		}
		valid = append(valid, name)
	}

	if p.batch.MaxConcurrentCompanies > 1 {
		if err := p.runConcurrent(ctx, valid); err != nil {
			return result, err
		}
		result.Processed = len(valid)
	} else {
		for i, name := range valid {
			if i > 0 {
				if err := sleep(ctx, p.batch.CompanyDelay()); err != nil {
					return result, err
				}
			}
			if _, err := p.Run(ctx, name); err != nil {
				return result, err
			}
			result.Processed++
		}
	}

	log.Info("batch complete",
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (p *Pipeline) runConcurrent(ctx context.Context, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.batch.MaxConcurrentCompanies)
	for _, name := range names {
		g.Go(func() error {
			_, err := p.Run(ctx, name)
			return err
		})
	}
	return g.Wait()
}

// Export gathers every known record through the gateway.
func (p *Pipeline) Export(ctx context.Context) ([]model.CompanyRecord, error) {
	return p.gateway.Export(ctx)
}

// sleep pauses for d unless the context is cancelled first. Zero and
// negative durations return immediately.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return eris.Wrap(ctx.Err(), "pipeline: cancelled")
	}
}
