// Package organizer maintains the user-editable groupings: folders, the
// fixed-slot dock, favorites, and the category-order preference. Position
// assignment reads current state first, so each collection is mutated under
// a single-writer lock.
package organizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/harmonic/launchkit/internal/database/repository"
	"github.com/harmonic/launchkit/internal/taxonomy"
)

const (
	keyCategoryOrder  = "category_order"
	keyDrawerViewMode = "drawer_view_mode"
	keyIconSize       = "icon_size"
	keyOnboardingDone = "onboarding_completed"

	defaultViewMode = "list"
	defaultIconSize = "medium"
)

// ErrNotFound marks a benign missing-row outcome; batch callers skip it.
var ErrNotFound = fmt.Errorf("not found")

// Organizer wires the grouping repositories together.
type Organizer struct {
	Folders   *repository.FolderRepo
	Dock      *repository.DockRepo
	Favorites *repository.FavoriteRepo
	Settings  *repository.SettingsRepo

	// DockSlots is the number of dock positions, 0..DockSlots-1.
	DockSlots int

	folderMu sync.Mutex
	dockMu   sync.Mutex
}

// CreateFolder makes an empty folder at the next position and returns its
// identifier.
func (o *Organizer) CreateFolder(ctx context.Context, name string) (string, error) {
	o.folderMu.Lock()
	defer o.folderMu.Unlock()

	max, err := o.Folders.MaxPosition(ctx)
	if err != nil {
		return "", fmt.Errorf("folder position: %w", err)
	}
	f := repository.Folder{ID: uuid.NewString(), Name: name, Position: max + 1}
	if err := o.Folders.Insert(ctx, f); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}
	return f.ID, nil
}

func (o *Organizer) RenameFolder(ctx context.Context, id, name string) error {
	return o.Folders.Rename(ctx, id, name)
}

// DeleteFolder removes the folder and all its memberships.
func (o *Organizer) DeleteFolder(ctx context.Context, id string) error {
	o.folderMu.Lock()
	defer o.folderMu.Unlock()
	return o.Folders.Delete(ctx, id)
}

// AddApp appends pkg to the folder at position = current member count.
func (o *Organizer) AddApp(ctx context.Context, folderID, pkg string) error {
	o.folderMu.Lock()
	defer o.folderMu.Unlock()

	f, err := o.Folders.Get(ctx, folderID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}
	n, err := o.Folders.MemberCount(ctx, folderID)
	if err != nil {
		return err
	}
	return o.Folders.AddApp(ctx, repository.FolderApp{FolderID: folderID, Package: pkg, Position: n})
}

// RemoveApp deletes the membership. Positions of the remaining members are
// left as they are; gaps are an accepted invariant.
func (o *Organizer) RemoveApp(ctx context.Context, folderID, pkg string) error {
	o.folderMu.Lock()
	defer o.folderMu.Unlock()
	return o.Folders.RemoveApp(ctx, folderID, pkg)
}

// SetDock replaces the whole slot assignment. Slots out of range and
// duplicate packages are rejected before anything is written.
func (o *Organizer) SetDock(ctx context.Context, slots []repository.DockSlot) error {
	o.dockMu.Lock()
	defer o.dockMu.Unlock()

	seenSlot := map[int]bool{}
	seenPkg := map[string]bool{}
	for _, s := range slots {
		if s.Slot < 0 || s.Slot >= o.DockSlots {
			return fmt.Errorf("dock slot %d out of range 0..%d", s.Slot, o.DockSlots-1)
		}
		if seenSlot[s.Slot] {
			return fmt.Errorf("dock slot %d assigned twice", s.Slot)
		}
		if seenPkg[s.Package] {
			return fmt.Errorf("package %s docked twice", s.Package)
		}
		seenSlot[s.Slot] = true
		seenPkg[s.Package] = true
	}
	return o.Dock.Replace(ctx, slots)
}

// SetDockSlot read-modify-writes the full set to bind one slot.
func (o *Organizer) SetDockSlot(ctx context.Context, slot int, pkg string) error {
	o.dockMu.Lock()
	defer o.dockMu.Unlock()

	if slot < 0 || slot >= o.DockSlots {
		return fmt.Errorf("dock slot %d out of range 0..%d", slot, o.DockSlots-1)
	}
	current, err := o.Dock.List(ctx)
	if err != nil {
		return err
	}
	next := make([]repository.DockSlot, 0, len(current)+1)
	for _, s := range current {
		if s.Slot == slot || s.Package == pkg {
			continue
		}
		next = append(next, s)
	}
	if pkg != "" {
		next = append(next, repository.DockSlot{Slot: slot, Package: pkg})
	}
	return o.Dock.Replace(ctx, next)
}

func (o *Organizer) AddFavorite(ctx context.Context, pkg string, position int) error {
	return o.Favorites.Add(ctx, repository.Favorite{Package: pkg, Position: position})
}

func (o *Organizer) RemoveFavorite(ctx context.Context, pkg string) error {
	return o.Favorites.Remove(ctx, pkg)
}

// CategoryOrder returns the persisted top-level order, or declaration
// order when unset. Names persisted by older builds that no longer parse
// are skipped.
func (o *Organizer) CategoryOrder(ctx context.Context) ([]taxonomy.Category, error) {
	raw, ok, err := o.Settings.Get(ctx, keyCategoryOrder)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return taxonomy.TopLevel(), nil
	}
	var out []taxonomy.Category
	for _, name := range strings.Split(raw, ",") {
		if c, ok := taxonomy.Parse(strings.TrimSpace(name)); ok {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return taxonomy.TopLevel(), nil
	}
	return out, nil
}

func (o *Organizer) SetCategoryOrder(ctx context.Context, order []taxonomy.Category) error {
	names := make([]string, len(order))
	for i, c := range order {
		names[i] = c.String()
	}
	return o.Settings.Set(ctx, keyCategoryOrder, strings.Join(names, ","))
}

// AvailableCategories intersects the order preference with the top-level
// categories actually present among apps, preserving preference order.
// Categories with no apps are omitted from the result, never removed from
// the stored preference.
func (o *Organizer) AvailableCategories(ctx context.Context, apps []repository.App) ([]taxonomy.Category, error) {
	order, err := o.CategoryOrder(ctx)
	if err != nil {
		return nil, err
	}
	present := map[taxonomy.Category]bool{}
	for _, a := range apps {
		present[taxonomy.TopLevelOf(a.Category)] = true
	}
	var out []taxonomy.Category
	for _, c := range order {
		if present[c] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (o *Organizer) DrawerViewMode(ctx context.Context) (string, error) {
	v, ok, err := o.Settings.Get(ctx, keyDrawerViewMode)
	if err != nil || !ok {
		return defaultViewMode, err
	}
	return v, nil
}

func (o *Organizer) SetDrawerViewMode(ctx context.Context, mode string) error {
	return o.Settings.Set(ctx, keyDrawerViewMode, mode)
}

func (o *Organizer) IconSize(ctx context.Context) (string, error) {
	v, ok, err := o.Settings.Get(ctx, keyIconSize)
	if err != nil || !ok {
		return defaultIconSize, err
	}
	return v, nil
}

func (o *Organizer) SetIconSize(ctx context.Context, size string) error {
	return o.Settings.Set(ctx, keyIconSize, size)
}

func (o *Organizer) OnboardingCompleted(ctx context.Context) (bool, error) {
	v, ok, err := o.Settings.Get(ctx, keyOnboardingDone)
	if err != nil || !ok {
		return false, err
	}
	return v == "true", nil
}

func (o *Organizer) SetOnboardingCompleted(ctx context.Context) error {
	return o.Settings.Set(ctx, keyOnboardingDone, "true")
}
