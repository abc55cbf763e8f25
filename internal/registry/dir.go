package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// manifest is the on-disk shape of one registry entry.
type manifest struct {
	Package    string     `json:"package"`
	Name       string     `json:"name"`
	OSCategory OSCategory `json:"os_category,omitempty"`
}

// Dir reads the registry from a directory of JSON manifests, one file per
// installed application. Unreadable or malformed files are skipped, never
// fatal; the enumeration proceeds with the remaining valid entries.
type Dir struct {
	path string
}

// NewDir returns a Dir rooted at path.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the watched directory.
func (d *Dir) Path() string { return d.path }

// ListInstalled implements Registry.
func (d *Dir) ListInstalled(ctx context.Context) ([]Installed, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("read registry dir: %w", err)
	}
	var out []Installed
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		m, err := readManifest(filepath.Join(d.path, e.Name()))
		if err != nil || m.Package == "" {
			continue
		}
		out = append(out, Installed{Package: m.Package, Name: m.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Package < out[j].Package })
	return out, nil
}

// Metadata implements Registry. Manifests are conventionally named after
// their package; fall back to a scan when the convention does not hold.
func (d *Dir) Metadata(ctx context.Context, pkg string) (Metadata, error) {
	if m, err := readManifest(filepath.Join(d.path, pkg+".json")); err == nil && m.Package == pkg {
		return Metadata{OSCategory: m.OSCategory}, nil
	}
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return Metadata{}, nil
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return Metadata{}, err
		}
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		m, err := readManifest(filepath.Join(d.path, e.Name()))
		if err != nil {
			continue
		}
		if m.Package == pkg {
			return Metadata{OSCategory: m.OSCategory}, nil
		}
	}
	return Metadata{}, nil
}

func readManifest(path string) (manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return manifest{}, err
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return manifest{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return m, nil
}
