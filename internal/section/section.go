// Package section groups applications into alphabetically ordered display
// sections across mixed scripts: Latin, digits, Japanese kana, other.
package section

import (
	"sort"
	"strings"
	"unicode"

	"github.com/harmonic/launchkit/internal/database/repository"
)

// OtherHeader collects everything outside digits, ASCII letters and the
// kana rows: ideographs, symbols, off-row kana.
const OtherHeader = "他"

// DigitHeader collects sort keys starting with an ASCII digit.
const DigitHeader = "#"

// Section is a derived value: one header and the applications under it, in
// sort order. Never persisted; rebuilt on every query.
type Section struct {
	Header string
	Apps   []repository.App
}

// KeyFunc derives the sort key for one application.
type KeyFunc func(repository.App) string

// DisplayNameKey is the default key: case-insensitive display name.
func DisplayNameKey(a repository.App) string {
	return strings.ToLower(a.Name)
}

// Build sorts apps by key and groups them under headers derived from each
// key's first character. Headers appear in first-seen order after the sort:
// section order depends on what is present, not on a fixed alphabet table.
func Build(apps []repository.App, key KeyFunc) []Section {
	if key == nil {
		key = DisplayNameKey
	}
	sorted := make([]repository.App, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := key(sorted[i]), key(sorted[j])
		if ki != kj {
			return ki < kj
		}
		return sorted[i].Package < sorted[j].Package
	})

	var out []Section
	index := map[string]int{}
	for _, a := range sorted {
		h := Header(key(a))
		i, ok := index[h]
		if !ok {
			i = len(out)
			index[h] = i
			out = append(out, Section{Header: h})
		}
		out[i].Apps = append(out[i].Apps, a)
	}
	return out
}

// Header computes the section header for a sort key.
func Header(key string) string {
	for _, r := range key {
		switch {
		case r >= '0' && r <= '9':
			return DigitHeader
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			return string(unicode.ToUpper(r))
		case isKana(r):
			if h, ok := kanaRow(r); ok {
				return h
			}
			return OtherHeader
		default:
			return OtherHeader
		}
	}
	return OtherHeader
}
