// Package reconcile keeps the persisted application set consistent with
// the live package registry. The diff computation is pure; Coordinator
// applies diffs to the store and serializes passes.
package reconcile

import (
	"github.com/harmonic/launchkit/internal/classify"
	"github.com/harmonic/launchkit/internal/database/repository"
	"github.com/harmonic/launchkit/internal/registry"
)

// MetadataFunc looks up platform metadata for one package. ok=false means
// the registry knows nothing; classification falls through to the keyword
// tier.
type MetadataFunc func(pkg string) (registry.Metadata, bool)

// Diff is the result of one reconciliation pass. Upserts are applied
// before Removals. Re-running with unchanged inputs yields an empty Diff.
type Diff struct {
	Upserts  []repository.App
	Removals []string
}

// Empty reports whether applying the diff would change nothing.
func (d Diff) Empty() bool {
	return len(d.Upserts) == 0 && len(d.Removals) == 0
}

// Reconcile classifies every installed identifier without a user override
// and diffs the result against existing records.
//
// User-categorized records are carried forward untouched except for a
// display-name refresh. Last-used timestamps are always preserved from the
// existing record. Records absent from installed are marked for removal.
func Reconcile(installed []registry.Installed, lookup MetadataFunc, existing []repository.App, cl *classify.Classifier) Diff {
	prev := make(map[string]repository.App, len(existing))
	for _, a := range existing {
		prev[a.Package] = a
	}

	var diff Diff
	seen := make(map[string]struct{}, len(installed))
	for _, in := range installed {
		if in.Package == "" {
			continue
		}
		if _, dup := seen[in.Package]; dup {
			continue
		}
		seen[in.Package] = struct{}{}

		old, had := prev[in.Package]
		if had && old.UserCategorized {
			next := old
			next.Name = in.Name
			if next != old {
				diff.Upserts = append(diff.Upserts, next)
			}
			continue
		}

		var meta registry.Metadata
		if lookup != nil {
			if m, ok := lookup(in.Package); ok {
				meta = m
			}
		}
		next := repository.App{
			Package:  in.Package,
			Name:     in.Name,
			Category: cl.Classify(in.Package, meta),
			LastUsed: old.LastUsed, // zero when no prior record
		}
		if !had || next != old {
			diff.Upserts = append(diff.Upserts, next)
		}
	}

	for _, a := range existing {
		if _, ok := seen[a.Package]; !ok {
			diff.Removals = append(diff.Removals, a.Package)
		}
	}
	return diff
}
