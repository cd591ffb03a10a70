package dao

import (
	"context"
	"database/sql"
	"fmt"

	"swap-backend/model"
)

type LikeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Insert(ctx context.Context, like *model.Like) error {
	query := `INSERT INTO likes (id, item_id, user_id, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, like.ID, like.ItemID, like.UserID, like.CreatedAt); err != nil {
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *LikeRepository) GetByID(ctx context.Context, id string) (*model.Like, error) {
	var l model.Like
	err := r.db.QueryRowContext(ctx, `SELECT id, item_id, user_id, created_at FROM likes WHERE id = ?`, id).
		Scan(&l.ID, &l.ItemID, &l.UserID, &l.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *LikeRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *LikeRepository) List(ctx context.Context) ([]model.Like, error) {
	return r.query(ctx, `SELECT id, item_id, user_id, created_at FROM likes ORDER BY created_at DESC`)
}

func (r *LikeRepository) ListByItems(ctx context.Context, itemIDs []string) (map[string][]model.Like, error) {
	out := make(map[string][]model.Like)
	if len(itemIDs) == 0 {
		return out, nil
	}
	query := `SELECT id, item_id, user_id, created_at FROM likes WHERE item_id IN (` + placeholders(len(itemIDs)) + `) ORDER BY created_at`
	likes, err := r.query(ctx, query, stringArgs(itemIDs)...)
	if err != nil {
		return nil, err
	}
	for _, l := range likes {
		out[l.ItemID] = append(out[l.ItemID], l)
	}
	return out, nil
}

func (r *LikeRepository) query(ctx context.Context, query string, args ...any) ([]model.Like, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []model.Like
	for rows.Next() {
		var l model.Like
		if err := rows.Scan(&l.ID, &l.ItemID, &l.UserID, &l.CreatedAt); err != nil {
			return nil, err
		}
		likes = append(likes, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return likes, nil
}
