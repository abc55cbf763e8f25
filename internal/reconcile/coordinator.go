package reconcile

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/harmonic/launchkit/internal/classify"
	"github.com/harmonic/launchkit/internal/database/repository"
	"github.com/harmonic/launchkit/internal/registry"
)

// Stats summarizes one applied pass.
type Stats struct {
	Installed int
	Upserted  int
	Removed   int
}

// Coordinator runs reconciliation passes against the store. The diff is
// computed against a point-in-time snapshot of existing records, so passes
// must not overlap; the mutex serializes them.
type Coordinator struct {
	Registry   registry.Registry
	Apps       *repository.AppRepo
	Classifier *classify.Classifier
	Log        *zap.Logger

	mu sync.Mutex
}

// Sync enumerates the registry, reconciles, and applies the diff in one
// transaction (updates before removals).
func (c *Coordinator) Sync(ctx context.Context) (Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	installed, err := c.Registry.ListInstalled(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list installed: %w", err)
	}
	existing, err := c.Apps.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load records: %w", err)
	}

	lookup := func(pkg string) (registry.Metadata, bool) {
		m, err := c.Registry.Metadata(ctx, pkg)
		if err != nil {
			return registry.Metadata{}, false
		}
		return m, true
	}
	diff := Reconcile(installed, lookup, existing, c.Classifier)

	stats := Stats{Installed: len(installed), Upserted: len(diff.Upserts), Removed: len(diff.Removals)}
	if diff.Empty() {
		c.Log.Debug("reconcile pass: no changes", zap.Int("installed", stats.Installed))
		return stats, nil
	}
	if err := c.Apps.ApplyDiff(ctx, diff.Upserts, diff.Removals); err != nil {
		return Stats{}, fmt.Errorf("apply diff: %w", err)
	}
	c.Log.Info("reconcile pass applied",
		zap.Int("installed", stats.Installed),
		zap.Int("upserted", stats.Upserted),
		zap.Int("removed", stats.Removed))
	return stats, nil
}
