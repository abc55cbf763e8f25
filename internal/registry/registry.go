// Package registry models the OS package registry the launcher core reads
// from: the installed-application enumeration, per-package metadata, and
// change notifications that trigger reconciliation.
package registry

import "context"

// Installed is one entry of the registry's enumeration.
type Installed struct {
	Package string `json:"package"`
	Name    string `json:"name"`
}

// OSCategory is the platform-reported category hint. Empty means the
// platform reports nothing for the package.
type OSCategory string

const (
	OSCategoryUndefined    OSCategory = ""
	OSCategoryGame         OSCategory = "game"
	OSCategoryAudio        OSCategory = "audio"
	OSCategoryVideo        OSCategory = "video"
	OSCategoryImage        OSCategory = "image"
	OSCategorySocial       OSCategory = "social"
	OSCategoryNews         OSCategory = "news"
	OSCategoryMaps         OSCategory = "maps"
	OSCategoryProductivity OSCategory = "productivity"
)

// Metadata is what the registry knows about a single package.
type Metadata struct {
	OSCategory OSCategory `json:"os_category"`
}

// Registry is the read-side contract of the OS package registry.
type Registry interface {
	// ListInstalled enumerates every installed application.
	ListInstalled(ctx context.Context) ([]Installed, error)

	// Metadata returns the platform metadata for one package. A package
	// the registry does not know yields the zero Metadata, not an error.
	Metadata(ctx context.Context, pkg string) (Metadata, error)
}
