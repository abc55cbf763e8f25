// Package search ranks applications against a free-text query: substring
// hits first, then close names by edit distance.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/harmonic/launchkit/internal/database/repository"
)

// maxDistance is the widest edit distance still offered as a near miss.
const maxDistance = 3

// Service queries the application records.
type Service struct {
	Apps *repository.AppRepo
}

type scored struct {
	app  repository.App
	tier int // 0 prefix, 1 substring, 2 near miss
	rank int
}

// Search returns up to limit applications ranked by match quality. An
// empty query returns nothing.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]repository.App, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	all, err := s.Apps.List(ctx)
	if err != nil {
		return nil, err
	}

	var hits []scored
	for _, a := range all {
		name := strings.ToLower(a.Name)
		pkg := strings.ToLower(a.Package)
		switch {
		case strings.HasPrefix(name, q):
			hits = append(hits, scored{app: a, tier: 0})
		case strings.Contains(name, q) || strings.Contains(pkg, q):
			hits = append(hits, scored{app: a, tier: 1, rank: strings.Index(name+pkg, q)})
		default:
			if d := levenshtein.ComputeDistance(q, name); d <= maxDistance && d < len(name) {
				hits = append(hits, scored{app: a, tier: 2, rank: d})
			}
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].tier != hits[j].tier {
			return hits[i].tier < hits[j].tier
		}
		if hits[i].rank != hits[j].rank {
			return hits[i].rank < hits[j].rank
		}
		return strings.ToLower(hits[i].app.Name) < strings.ToLower(hits[j].app.Name)
	})

	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]repository.App, len(hits))
	for i, h := range hits {
		out[i] = h.app
	}
	return out, nil
}

// Recent returns the most recently launched applications.
func (s *Service) Recent(ctx context.Context, limit int) ([]repository.App, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.Apps.Recent(ctx, limit)
}
