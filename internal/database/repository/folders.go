package repository

import (
	"context"
	"database/sql"
)

// FolderRepo stores folders and their memberships. Position arithmetic
// (max+1 on create, count on append) lives in the organizer, which
// serializes folder writes.
type FolderRepo struct{ db *sql.DB }

func NewFolderRepo(db *sql.DB) *FolderRepo { return &FolderRepo{db: db} }

func (r *FolderRepo) Insert(ctx context.Context, f Folder) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO folders(id, name, position) VALUES(?, ?, ?)`, f.ID, f.Name, f.Position)
	return err
}

func (r *FolderRepo) Rename(ctx context.Context, id, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE folders SET name = ? WHERE id = ?`, name, id)
	return err
}

// Delete removes the folder; memberships cascade.
func (r *FolderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM folders WHERE id = ?`, id)
	return err
}

// Get returns nil when the folder does not exist.
func (r *FolderRepo) Get(ctx context.Context, id string) (*Folder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, position FROM folders WHERE id = ?`, id)
	var f Folder
	if err := row.Scan(&f.ID, &f.Name, &f.Position); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *FolderRepo) List(ctx context.Context) ([]Folder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, position FROM folders ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Folder
	for rows.Next() {
		var f Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.Position); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// MaxPosition returns the highest folder position, or -1 when no folders
// exist.
func (r *FolderRepo) MaxPosition(ctx context.Context) (int, error) {
	var pos sql.NullInt64
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(position) FROM folders`).Scan(&pos); err != nil {
		return 0, err
	}
	if !pos.Valid {
		return -1, nil
	}
	return int(pos.Int64), nil
}

func (r *FolderRepo) AddApp(ctx context.Context, m FolderApp) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO folder_apps(folder_id, package, position) VALUES(?, ?, ?)
	ON CONFLICT(folder_id, package) DO NOTHING`, m.FolderID, m.Package, m.Position)
	return err
}

// RemoveApp deletes the membership row. Remaining positions are not
// renumbered; display order only needs a total order.
func (r *FolderRepo) RemoveApp(ctx context.Context, folderID, pkg string) error {
	_, err := r.db.ExecContext(ctx, `
	DELETE FROM folder_apps WHERE folder_id = ? AND package = ?`, folderID, pkg)
	return err
}

func (r *FolderRepo) Members(ctx context.Context, folderID string) ([]FolderApp, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT folder_id, package, position FROM folder_apps
	WHERE folder_id = ? ORDER BY position, package`, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []FolderApp
	for rows.Next() {
		var m FolderApp
		if err := rows.Scan(&m.FolderID, &m.Package, &m.Position); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *FolderRepo) MemberCount(ctx context.Context, folderID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM folder_apps WHERE folder_id = ?`, folderID).Scan(&n)
	return n, err
}
