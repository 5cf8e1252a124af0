// Package source contains the adapters that resolve a company name against
// one external source and return a normalized fact bundle. Absence is a
// first-class outcome: adapters return nil (or an empty bundle), never a
// fatal error, when a source has nothing.
package source

import (
	"context"

	"github.com/sells-group/enrich-cli/internal/model"
)

// Source resolves a company name to a fact bundle.
type Source interface {
	// Resolve returns the source's bundle for the company. A nil bundle
	// means the source had no match; errors are reserved for cancellation.
	Resolve(ctx context.Context, name string) (*model.FactBundle, error)
	Name() string
}
