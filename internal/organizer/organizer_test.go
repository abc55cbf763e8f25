package organizer

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harmonic/launchkit/internal/database"
	"github.com/harmonic/launchkit/internal/database/repository"
	"github.com/harmonic/launchkit/internal/taxonomy"
)

func testOrganizer(t *testing.T) (*Organizer, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchkit.db")
	db, err := database.Open(path)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = db.Close() })

	return &Organizer{
		Folders:   repository.NewFolderRepo(db),
		Dock:      repository.NewDockRepo(db),
		Favorites: repository.NewFavoriteRepo(db),
		Settings:  repository.NewSettingsRepo(db),
		DockSlots: 4,
	}, db
}

func TestCreateFolderAssignsDensePositions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, _ := testOrganizer(t)

	id1, err := org.CreateFolder(ctx, "Games")
	require.NoError(t, err)
	id2, err := org.CreateFolder(ctx, "Work")
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)

	folders, err := org.Folders.List(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	require.Equal(t, 0, folders[0].Position)
	require.Equal(t, "Games", folders[0].Name)
	require.Equal(t, 1, folders[1].Position)
}

func TestAddAppAppendsAtMemberCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, _ := testOrganizer(t)

	id, err := org.CreateFolder(ctx, "Games")
	require.NoError(t, err)
	require.NoError(t, org.AddApp(ctx, id, "com.example.a"))
	require.NoError(t, org.AddApp(ctx, id, "com.example.b"))

	members, err := org.Folders.Members(ctx, id)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, 0, members[0].Position)
	require.Equal(t, 1, members[1].Position)
}

func TestAddAppToMissingFolderIsNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, _ := testOrganizer(t)

	err := org.AddApp(ctx, "no-such-folder", "com.example.a")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFolderCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, db := testOrganizer(t)

	id, err := org.CreateFolder(ctx, "Games")
	require.NoError(t, err)
	require.NoError(t, org.AddApp(ctx, id, "com.example.a"))
	require.NoError(t, org.DeleteFolder(ctx, id))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM folder_apps`).Scan(&n))
	require.Zero(t, n)

	// Removing the last member never deletes the folder itself.
	id2, err := org.CreateFolder(ctx, "Tools")
	require.NoError(t, err)
	require.NoError(t, org.AddApp(ctx, id2, "com.example.b"))
	require.NoError(t, org.RemoveApp(ctx, id2, "com.example.b"))
	f, err := org.Folders.Get(ctx, id2)
	require.NoError(t, err)
	require.NotNil(t, f)
}

func TestSetDockValidates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, _ := testOrganizer(t)

	require.Error(t, org.SetDock(ctx, []repository.DockSlot{{Slot: 4, Package: "com.example.a"}}))
	require.Error(t, org.SetDock(ctx, []repository.DockSlot{{Slot: -1, Package: "com.example.a"}}))
	require.Error(t, org.SetDock(ctx, []repository.DockSlot{
		{Slot: 0, Package: "com.example.a"},
		{Slot: 0, Package: "com.example.b"},
	}))
	require.Error(t, org.SetDock(ctx, []repository.DockSlot{
		{Slot: 0, Package: "com.example.a"},
		{Slot: 1, Package: "com.example.a"},
	}))

	require.NoError(t, org.SetDock(ctx, []repository.DockSlot{
		{Slot: 0, Package: "com.example.a"},
		{Slot: 2, Package: "com.example.b"},
	}))
}

func TestSetDockSlotReadModifyWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, _ := testOrganizer(t)

	require.NoError(t, org.SetDock(ctx, []repository.DockSlot{
		{Slot: 0, Package: "com.example.a"},
		{Slot: 1, Package: "com.example.b"},
	}))
	// Rebinding a docked package moves it instead of duplicating it.
	require.NoError(t, org.SetDockSlot(ctx, 3, "com.example.a"))

	slots, err := org.Dock.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []repository.DockSlot{
		{Slot: 1, Package: "com.example.b"},
		{Slot: 3, Package: "com.example.a"},
	}, slots)

	// Clearing a slot.
	require.NoError(t, org.SetDockSlot(ctx, 1, ""))
	slots, err = org.Dock.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []repository.DockSlot{{Slot: 3, Package: "com.example.a"}}, slots)
}

func TestCategoryOrderDefaultsToDeclarationOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, _ := testOrganizer(t)

	order, err := org.CategoryOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, taxonomy.TopLevel(), order)
}

func TestCategoryOrderRoundTripSkipsUnknownNames(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, _ := testOrganizer(t)

	want := []taxonomy.Category{taxonomy.Game, taxonomy.Money, taxonomy.Communication}
	require.NoError(t, org.SetCategoryOrder(ctx, want))

	got, err := org.CategoryOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// A name from some older build is skipped, not fatal.
	require.NoError(t, org.Settings.Set(ctx, "category_order", "game,astrology,money"))
	got, err = org.CategoryOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, []taxonomy.Category{taxonomy.Game, taxonomy.Money}, got)
}

func TestAvailableCategoriesIntersectsWithoutMutatingPreference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, _ := testOrganizer(t)

	pref := []taxonomy.Category{taxonomy.Game, taxonomy.Money, taxonomy.Communication}
	require.NoError(t, org.SetCategoryOrder(ctx, pref))

	apps := []repository.App{
		{Package: "a", Category: taxonomy.Payment},   // sub of Money
		{Package: "b", Category: taxonomy.Messaging}, // sub of Communication
		{Package: "c", Category: taxonomy.Tool},      // not in preference
	}
	got, err := org.AvailableCategories(ctx, apps)
	require.NoError(t, err)
	require.Equal(t, []taxonomy.Category{taxonomy.Money, taxonomy.Communication}, got)

	// The stored preference is untouched.
	after, err := org.CategoryOrder(ctx)
	require.NoError(t, err)
	require.Equal(t, pref, after)

	// No apps, no tabs.
	got, err = org.AvailableCategories(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestScalarPreferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	org, _ := testOrganizer(t)

	mode, err := org.DrawerViewMode(ctx)
	require.NoError(t, err)
	require.Equal(t, "list", mode)
	require.NoError(t, org.SetDrawerViewMode(ctx, "grid"))
	mode, err = org.DrawerViewMode(ctx)
	require.NoError(t, err)
	require.Equal(t, "grid", mode)

	size, err := org.IconSize(ctx)
	require.NoError(t, err)
	require.Equal(t, "medium", size)

	done, err := org.OnboardingCompleted(ctx)
	require.NoError(t, err)
	require.False(t, done)
	require.NoError(t, org.SetOnboardingCompleted(ctx))
	done, err = org.OnboardingCompleted(ctx)
	require.NoError(t, err)
	require.True(t, done)
}
