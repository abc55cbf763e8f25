// Package repository is the table-level access layer over the launcher
// store: one repo per table, plain database/sql.
package repository

import "github.com/harmonic/launchkit/internal/taxonomy"

// App is an application row. Package is the primary key. LastUsed is unix
// milliseconds, zero meaning never launched; it only moves forward.
type App struct {
	Package         string
	Name            string
	Category        taxonomy.Category
	UserCategorized bool
	LastUsed        int64
}

// Folder is a folder row. Position orders folders for display.
type Folder struct {
	ID       string
	Name     string
	Position int
}

// FolderApp is one folder membership row. Position orders members within
// the folder; gaps after removal are allowed.
type FolderApp struct {
	FolderID string
	Package  string
	Position int
}

// DockSlot binds one dock position to a package. Slots may be sparse.
type DockSlot struct {
	Slot    int
	Package string
}

// Favorite is an ordered favorite row, independent of the dock.
type Favorite struct {
	Package  string
	Position int
}
