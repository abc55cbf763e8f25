package reconcile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harmonic/launchkit/internal/classify"
	"github.com/harmonic/launchkit/internal/database"
	"github.com/harmonic/launchkit/internal/database/repository"
	"github.com/harmonic/launchkit/internal/registry"
	"github.com/harmonic/launchkit/internal/taxonomy"
)

// fakeRegistry serves a fixed installed set from memory.
type fakeRegistry struct {
	installed []registry.Installed
	meta      map[string]registry.Metadata
}

func (f *fakeRegistry) ListInstalled(context.Context) ([]registry.Installed, error) {
	return f.installed, nil
}

func (f *fakeRegistry) Metadata(_ context.Context, pkg string) (registry.Metadata, error) {
	return f.meta[pkg], nil
}

func testCoordinator(t *testing.T, reg registry.Registry) (*Coordinator, *repository.AppRepo) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "launchkit.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = db.Close() })

	apps := repository.NewAppRepo(db)
	return &Coordinator{
		Registry:   reg,
		Apps:       apps,
		Classifier: classify.New(),
		Log:        zap.NewNop(),
	}, apps
}

func TestSyncAppliesClassification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg := &fakeRegistry{
		installed: []registry.Installed{
			{Package: "com.example.chrome", Name: "Chrome"},
			{Package: "com.example.opaque", Name: "Opaque"},
		},
		meta: map[string]registry.Metadata{
			"com.example.opaque": {OSCategory: registry.OSCategoryGame},
		},
	}
	coord, apps := testCoordinator(t, reg)

	stats, err := coord.Sync(ctx)
	require.NoError(t, err)
	require.Equal(t, Stats{Installed: 2, Upserted: 2, Removed: 0}, stats)

	chrome, err := apps.Get(ctx, "com.example.chrome")
	require.NoError(t, err)
	require.Equal(t, taxonomy.Browser, chrome.Category)

	opaque, err := apps.Get(ctx, "com.example.opaque")
	require.NoError(t, err)
	require.Equal(t, taxonomy.Game, opaque.Category)
}

func TestSyncIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg := &fakeRegistry{installed: []registry.Installed{{Package: "com.example.chrome", Name: "Chrome"}}}
	coord, _ := testCoordinator(t, reg)

	_, err := coord.Sync(ctx)
	require.NoError(t, err)
	stats, err := coord.Sync(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.Upserted)
	require.Zero(t, stats.Removed)
}

func TestSyncRemovesUninstalledAndKeepsOverrides(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg := &fakeRegistry{installed: []registry.Installed{
		{Package: "com.example.keep", Name: "Keep"},
		{Package: "com.example.gone", Name: "Gone"},
	}}
	coord, apps := testCoordinator(t, reg)

	_, err := coord.Sync(ctx)
	require.NoError(t, err)
	require.NoError(t, apps.SetCategory(ctx, "com.example.keep", taxonomy.Health))
	require.NoError(t, apps.Touch(ctx, "com.example.keep", 777))

	reg.installed = reg.installed[:1] // uninstall "gone"
	stats, err := coord.Sync(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Removed)

	gone, err := apps.Get(ctx, "com.example.gone")
	require.NoError(t, err)
	require.Nil(t, gone)

	keep, err := apps.Get(ctx, "com.example.keep")
	require.NoError(t, err)
	require.Equal(t, taxonomy.Health, keep.Category)
	require.True(t, keep.UserCategorized)
	require.EqualValues(t, 777, keep.LastUsed)
}
