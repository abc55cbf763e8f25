package repository

import (
	"context"
	"database/sql"

	"github.com/harmonic/launchkit/internal/database"
)

// DockRepo stores the fixed-slot dock.
type DockRepo struct{ db *sql.DB }

func NewDockRepo(db *sql.DB) *DockRepo { return &DockRepo{db: db} }

// Replace swaps the entire slot assignment in one transaction. Partial
// updates go through read-modify-write of the full set.
func (r *DockRepo) Replace(ctx context.Context, slots []DockSlot) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM dock_apps`); err != nil {
			return err
		}
		for _, s := range slots {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO dock_apps(slot, package) VALUES(?, ?)`, s.Slot, s.Package); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DockRepo) List(ctx context.Context) ([]DockSlot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slot, package FROM dock_apps ORDER BY slot`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DockSlot
	for rows.Next() {
		var s DockSlot
		if err := rows.Scan(&s.Slot, &s.Package); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
