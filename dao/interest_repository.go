package dao

import (
	"context"
	"database/sql"
	"fmt"

	"swap-backend/model"
)

// InterestRepository stores the categories users are interested by.
type InterestRepository struct {
	db *sql.DB
}

func NewInterestRepository(db *sql.DB) *InterestRepository {
	return &InterestRepository{db: db}
}

func (r *InterestRepository) ListByUser(ctx context.Context, userID string) ([]model.Category, error) {
	query := `
		SELECT c.id, c.name
		FROM user_categories uc
		JOIN categories c ON c.id = uc.category_id
		WHERE uc.user_id = ?
		ORDER BY c.name
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// Replace swaps the user's interests in one transaction.
func (r *InterestRepository) Replace(ctx context.Context, userID string, categoryIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_categories WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear interests: %w", err)
	}
	for _, id := range categoryIDs {
		if _, err := tx.ExecContext(ctx, `INSERT INTO user_categories (user_id, category_id) VALUES (?, ?)`, userID, id); err != nil {
			return fmt.Errorf("insert interest: %w", err)
		}
	}
	return tx.Commit()
}

func (r *InterestRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category_id, COUNT(*) FROM user_categories GROUP BY category_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
