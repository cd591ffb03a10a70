package dao

import (
	"context"
	"database/sql"
	"fmt"

	"swap-backend/model"
	"swap-backend/usecase"
)

type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Insert relies on the unique (offer_id, user_id) key to refuse a second
// note on the same offer.
func (r *NoteRepository) Insert(ctx context.Context, n *model.Note) error {
	query := `INSERT INTO notes (id, user_id, offer_id, text, note) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, n.ID, n.UserID, n.OfferID, n.Text, n.Note); err != nil {
		if isDuplicateEntry(err) {
			return usecase.ErrDuplicateNote
		}
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, n *model.Note) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE notes SET text = ?, note = ? WHERE id = ?`, n.Text, n.Note, n.ID); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var n model.Note
	err := r.db.QueryRowContext(ctx, `SELECT id, user_id, offer_id, text, note FROM notes WHERE id = ?`, id).
		Scan(&n.ID, &n.UserID, &n.OfferID, &n.Text, &n.Note)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepository) ExistsForOfferUser(ctx context.Context, offerID, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM notes WHERE offer_id = ? AND user_id = ?)`
	if err := r.db.QueryRowContext(ctx, query, offerID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]model.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, offer_id, text, note FROM notes WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.OfferID, &n.Text, &n.Note); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}
