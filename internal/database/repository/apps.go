package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harmonic/launchkit/internal/taxonomy"
)

// AppRepo stores application records.
type AppRepo struct{ db *sql.DB }

func NewAppRepo(db *sql.DB) *AppRepo { return &AppRepo{db: db} }

const appColumns = `package, name, category, user_categorized, last_used`

func scanApp(s interface{ Scan(...any) error }) (App, error) {
	var a App
	var cat string
	if err := s.Scan(&a.Package, &a.Name, &cat, &a.UserCategorized, &a.LastUsed); err != nil {
		return App{}, err
	}
	c, ok := taxonomy.Parse(cat)
	if !ok {
		c = taxonomy.Other
	}
	a.Category = c
	return a, nil
}

func (r *AppRepo) Upsert(ctx context.Context, a App) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO apps(package, name, category, user_categorized, last_used)
	VALUES(?, ?, ?, ?, ?)
	ON CONFLICT(package) DO UPDATE SET
	 name=excluded.name,
	 category=excluded.category,
	 user_categorized=excluded.user_categorized,
	 last_used=excluded.last_used;
	`, a.Package, a.Name, a.Category.String(), a.UserCategorized, a.LastUsed)
	return err
}

// Get returns nil when the package has no record.
func (r *AppRepo) Get(ctx context.Context, pkg string) (*App, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+appColumns+` FROM apps WHERE package = ?`, pkg)
	a, err := scanApp(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppRepo) List(ctx context.Context) ([]App, error) {
	return r.query(ctx, `SELECT `+appColumns+` FROM apps ORDER BY package`)
}

func (r *AppRepo) ListByCategory(ctx context.Context, c taxonomy.Category) ([]App, error) {
	return r.query(ctx, `SELECT `+appColumns+` FROM apps WHERE category = ? ORDER BY name COLLATE NOCASE`, c.String())
}

// SearchName matches display names case-insensitively by substring.
func (r *AppRepo) SearchName(ctx context.Context, q string) ([]App, error) {
	return r.query(ctx, `
	SELECT `+appColumns+` FROM apps
	WHERE name LIKE '%' || ? || '%' OR package LIKE '%' || ? || '%'
	ORDER BY name COLLATE NOCASE`, q, q)
}

// Recent returns up to limit launched apps, most recent first. Apps never
// launched are excluded.
func (r *AppRepo) Recent(ctx context.Context, limit int) ([]App, error) {
	return r.query(ctx, `
	SELECT `+appColumns+` FROM apps
	WHERE last_used > 0
	ORDER BY last_used DESC, package
	LIMIT ?`, limit)
}

func (r *AppRepo) Delete(ctx context.Context, pkg string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM apps WHERE package = ?`, pkg)
	return err
}

// SetCategory records a human override: the category sticks until the user
// clears it, and reconciliation will no longer touch it.
func (r *AppRepo) SetCategory(ctx context.Context, pkg string, c taxonomy.Category) error {
	res, err := r.db.ExecContext(ctx, `
	UPDATE apps SET category = ?, user_categorized = 1 WHERE package = ?`, c.String(), pkg)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no record for %s", pkg)
	}
	return nil
}

// Touch advances the last-used timestamp. Monotonic: an older timestamp
// never overwrites a newer one.
func (r *AppRepo) Touch(ctx context.Context, pkg string, ts int64) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE apps SET last_used = ? WHERE package = ? AND last_used < ?`, ts, pkg, ts)
	return err
}

// ApplyDiff applies a reconciliation diff in one transaction, updates
// before removals.
func (r *AppRepo) ApplyDiff(ctx context.Context, upserts []App, removals []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, a := range upserts {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO apps(package, name, category, user_categorized, last_used)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(package) DO UPDATE SET
		 name=excluded.name,
		 category=excluded.category,
		 user_categorized=excluded.user_categorized,
		 last_used=excluded.last_used;
		`, a.Package, a.Name, a.Category.String(), a.UserCategorized, a.LastUsed); err != nil {
			return fmt.Errorf("upsert %s: %w", a.Package, err)
		}
	}
	for _, pkg := range removals {
		if _, err := tx.ExecContext(ctx, `DELETE FROM apps WHERE package = ?`, pkg); err != nil {
			return fmt.Errorf("remove %s: %w", pkg, err)
		}
	}
	return tx.Commit()
}

func (r *AppRepo) query(ctx context.Context, q string, args ...any) ([]App, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []App
	for rows.Next() {
		a, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
