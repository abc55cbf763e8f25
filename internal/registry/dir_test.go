package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDirListInstalled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	writeManifest(t, dir, "com.example.b.json", `{"package":"com.example.b","name":"Bee"}`)
	writeManifest(t, dir, "com.example.a.json", `{"package":"com.example.a","name":"Ay","os_category":"game"}`)
	writeManifest(t, dir, "broken.json", `{not json`)
	writeManifest(t, dir, "ignored.txt", `not a manifest`)
	writeManifest(t, dir, "empty.json", `{"name":"no package field"}`)

	got, err := NewDir(dir).ListInstalled(ctx)
	require.NoError(t, err)
	require.Equal(t, []Installed{
		{Package: "com.example.a", Name: "Ay"},
		{Package: "com.example.b", Name: "Bee"},
	}, got)
}

func TestDirMetadata(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	writeManifest(t, dir, "com.example.a.json", `{"package":"com.example.a","name":"Ay","os_category":"maps"}`)
	// Manifest not named after its package still resolves via scan.
	writeManifest(t, dir, "oddly-named.json", `{"package":"com.example.b","name":"Bee","os_category":"news"}`)

	d := NewDir(dir)

	m, err := d.Metadata(ctx, "com.example.a")
	require.NoError(t, err)
	require.Equal(t, OSCategoryMaps, m.OSCategory)

	m, err = d.Metadata(ctx, "com.example.b")
	require.NoError(t, err)
	require.Equal(t, OSCategoryNews, m.OSCategory)

	// Unknown package: zero metadata, no error.
	m, err = d.Metadata(ctx, "com.example.missing")
	require.NoError(t, err)
	require.Equal(t, OSCategoryUndefined, m.OSCategory)
}

func TestDirListInstalledMissingDir(t *testing.T) {
	t.Parallel()
	_, err := NewDir(filepath.Join(t.TempDir(), "absent")).ListInstalled(context.Background())
	require.Error(t, err)
}
