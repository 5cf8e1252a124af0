package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/enrich-cli/internal/model"
)

// ConnectFunc opens a Store. The gateway retries it with backoff before
// giving up on durable persistence.
type ConnectFunc func(ctx context.Context) (Store, error)

// Gateway fronts the durable store with an in-memory overlay so that a
// batch always completes even when the database is unreachable. Every
// upsert lands in memory; a connected store is written through as well.
// When the initial connection attempts are exhausted the gateway runs in
// memory-only mode for the rest of the process.
type Gateway struct {
	mu     sync.Mutex
	store  Store // nil in memory-only mode
	memory map[string]model.CompanyRecord
	order  []string
}

// Connect builds a Gateway, attempting the store connection up to attempts
// times with linearly increasing backoff. Exhaustion is logged once at
// error level and yields a memory-only gateway, never an error.
func Connect(ctx context.Context, connect ConnectFunc, attempts int, baseDelay time.Duration) *Gateway {
	g := &Gateway{memory: map[string]model.CompanyRecord{}}
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 1; i <= attempts; i++ {
		st, err := connect(ctx)
		if err == nil {
			g.store = st
			return g
		}
		lastErr = err
		zap.L().Warn("store connection failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
		if i < attempts {
			select {
			case <-time.After(time.Duration(i) * baseDelay):
			case <-ctx.Done():
				i = attempts
			}
		}
	}

	zap.L().Error("store unreachable, continuing with in-memory records only",
		zap.Int("attempts", attempts),
		zap.Error(lastErr),
	)
	return g
}

// NewMemoryGateway returns a gateway with no durable store attached.
func NewMemoryGateway() *Gateway {
	return &Gateway{memory: map[string]model.CompanyRecord{}}
}

// Degraded reports whether the gateway is running without a durable store.
func (g *Gateway) Degraded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store == nil
}

// Upsert records the company in memory and writes through to the durable
// store when one is attached. A store write failure is logged and the
// in-memory copy stands; the batch is never aborted over it.
func (g *Gateway) Upsert(ctx context.Context, rec model.CompanyRecord) {
	g.mu.Lock()
	if _, seen := g.memory[rec.Name]; !seen {
		g.order = append(g.order, rec.Name)
	}
	g.memory[rec.Name] = rec
	st := g.store
	g.mu.Unlock()

	if st == nil {
		return
	}
	if err := st.UpsertCompany(ctx, rec); err != nil {
		zap.L().Warn("durable upsert failed, record kept in memory",
			zap.String("company", rec.Name),
			zap.Error(err),
		)
	}
}

// Get returns the record for a company, preferring the in-memory copy
// from the current run over the stored one. nil means not found.
func (g *Gateway) Get(ctx context.Context, name string) (*model.CompanyRecord, error) {
	g.mu.Lock()
	rec, ok := g.memory[name]
	st := g.store
	g.mu.Unlock()

	if ok {
		return &rec, nil
	}
	if st == nil {
		return nil, nil
	}
	return st.GetCompany(ctx, name)
}

// Export returns the union of stored and in-memory records. Where both
// hold a record for the same company the in-memory one wins, since it is
// from the current run.
func (g *Gateway) Export(ctx context.Context) ([]model.CompanyRecord, error) {
	g.mu.Lock()
	st := g.store
	memory := make(map[string]model.CompanyRecord, len(g.memory))
	for k, v := range g.memory {
		memory[k] = v
	}
	order := append([]string(nil), g.order...)
	g.mu.Unlock()

	var out []model.CompanyRecord
	seen := map[string]bool{}

	if st != nil {
		stored, err := st.ListCompanies(ctx)
		if err != nil {
			zap.L().Warn("store scan failed, exporting in-memory records only", zap.Error(err))
		} else {
			for _, rec := range stored {
				if mem, ok := memory[rec.Name]; ok {
					rec = mem
				}
				out = append(out, rec)
				seen[rec.Name] = true
			}
		}
	}

	for _, name := range order {
		if !seen[name] {
			out = append(out, memory[name])
		}
	}
	return out, nil
}

// Close releases the durable store, if any.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.store == nil {
		return nil
	}
	err := g.store.Close()
	g.store = nil
	return err
}
