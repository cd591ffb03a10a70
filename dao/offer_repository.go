package dao

import (
	"context"
	"database/sql"
	"fmt"

	"swap-backend/model"
)

type OfferRepository struct {
	db *sql.DB
}

func NewOfferRepository(db *sql.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

const offerColumns = `o.id, o.item_given_id, o.item_received_id, o.accepted, o.answered, o.comment, o.created_at`

func scanOffer(row rowScanner) (model.Offer, error) {
	var o model.Offer
	err := row.Scan(&o.ID, &o.ItemGivenID, &o.ItemReceivedID, &o.Accepted, &o.Answered, &o.Comment, &o.CreatedAt)
	return o, err
}

func (r *OfferRepository) Insert(ctx context.Context, o *model.Offer) error {
	query := `INSERT INTO offers (id, item_given_id, item_received_id, accepted, answered, comment, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, o.ID, o.ItemGivenID, o.ItemReceivedID, o.Accepted, o.Answered, o.Comment, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

func (r *OfferRepository) Update(ctx context.Context, o *model.Offer) error {
	query := `UPDATE offers SET item_given_id = ?, item_received_id = ?, accepted = ?, answered = ?, comment = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, o.ItemGivenID, o.ItemReceivedID, o.Accepted, o.Answered, o.Comment, o.ID)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM offers WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete offer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*model.Offer, error) {
	o, err := scanOffer(r.db.QueryRowContext(ctx, `SELECT `+offerColumns+` FROM offers o WHERE o.id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) ListPendingByUser(ctx context.Context, userID string) ([]model.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers o
		JOIN items g ON g.id = o.item_given_id
		JOIN items rc ON rc.id = o.item_received_id
		WHERE o.answered = FALSE AND (g.owner_id = ? OR rc.owner_id = ?)
		ORDER BY o.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []model.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return offers, nil
}
