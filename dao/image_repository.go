package dao

import (
	"context"
	"database/sql"
	"fmt"

	"swap-backend/model"
)

type ImageRepository struct {
	db *sql.DB
}

func NewImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (r *ImageRepository) Insert(ctx context.Context, img *model.Image) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO images (id, item_id, url) VALUES (?, ?, ?)`, img.ID, img.ItemID, img.URL)
	if err != nil {
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id string) (*model.Image, error) {
	var img model.Image
	err := r.db.QueryRowContext(ctx, `SELECT id, item_id, url FROM images WHERE id = ?`, id).Scan(&img.ID, &img.ItemID, &img.URL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete image: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ImageRepository) ListByItems(ctx context.Context, itemIDs []string) (map[string][]model.Image, error) {
	out := make(map[string][]model.Image)
	if len(itemIDs) == 0 {
		return out, nil
	}
	query := `SELECT id, item_id, url FROM images WHERE item_id IN (` + placeholders(len(itemIDs)) + `) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, stringArgs(itemIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.ItemID, &img.URL); err != nil {
			return nil, err
		}
		out[img.ItemID] = append(out[img.ItemID], img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
