package repository

import (
	"context"
	"database/sql"
)

// FavoriteRepo stores the ordered favorites list.
type FavoriteRepo struct{ db *sql.DB }

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

func (r *FavoriteRepo) Add(ctx context.Context, f Favorite) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO favorites(package, position) VALUES(?, ?)
	ON CONFLICT(package) DO UPDATE SET position=excluded.position`, f.Package, f.Position)
	return err
}

func (r *FavoriteRepo) Remove(ctx context.Context, pkg string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE package = ?`, pkg)
	return err
}

func (r *FavoriteRepo) List(ctx context.Context) ([]Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT package, position FROM favorites ORDER BY position, package`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.Package, &f.Position); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
