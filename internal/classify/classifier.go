// Package classify assigns a category to a package identifier through an
// ordered rule chain: verified per-package overrides, then the platform
// category hint, then package-name keywords, then the fallback. First match
// wins; the chain never fails.
package classify

import (
	"github.com/harmonic/launchkit/internal/registry"
	"github.com/harmonic/launchkit/internal/taxonomy"
)

// Rule is one source in the chain: a partial function from package
// identifier and metadata to a category.
type Rule interface {
	Apply(pkg string, meta registry.Metadata) (taxonomy.Category, bool)
}

// Classifier evaluates rules in order. Deterministic, side-effect free.
type Classifier struct {
	rules []Rule
}

// New returns the default chain: override table, OS category map, keyword
// table.
func New() *Classifier {
	return NewWithRules(knownApps, OSCategoryRule{}, defaultKeywords)
}

// NewWithRules builds a classifier over an explicit chain, in priority
// order.
func NewWithRules(rules ...Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the first matching rule's category, or taxonomy.Other
// when no rule matches. Missing metadata is a fall-through, not an error.
func (c *Classifier) Classify(pkg string, meta registry.Metadata) taxonomy.Category {
	for _, r := range c.rules {
		if cat, ok := r.Apply(pkg, meta); ok {
			return cat
		}
	}
	return taxonomy.Other
}
