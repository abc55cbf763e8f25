package classify

import (
	"github.com/harmonic/launchkit/internal/registry"
	"github.com/harmonic/launchkit/internal/taxonomy"
)

// OSCategoryRule maps the platform-reported category hint onto the domain
// taxonomy. An undefined or unmapped hint falls through.
type OSCategoryRule struct{}

var osCategoryMap = map[registry.OSCategory]taxonomy.Category{
	registry.OSCategorySocial:       taxonomy.SNS,
	registry.OSCategoryProductivity: taxonomy.Office,
	registry.OSCategoryGame:         taxonomy.Game,
	registry.OSCategoryAudio:        taxonomy.Music,
	registry.OSCategoryVideo:        taxonomy.Streaming,
	registry.OSCategoryImage:        taxonomy.Photo,
	registry.OSCategoryNews:         taxonomy.News,
	registry.OSCategoryMaps:         taxonomy.Transport,
}

// Apply implements Rule.
func (OSCategoryRule) Apply(_ string, meta registry.Metadata) (taxonomy.Category, bool) {
	if meta.OSCategory == registry.OSCategoryUndefined {
		return 0, false
	}
	c, ok := osCategoryMap[meta.OSCategory]
	return c, ok
}
