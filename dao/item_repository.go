package dao

import (
	"context"
	"database/sql"
	"fmt"

	"swap-backend/model"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, name, description, price_min, price_max, category_id, owner_id, created_at, views, archived`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, extra ...any) (model.Item, error) {
	var item model.Item
	dest := []any{&item.ID, &item.Name, &item.Description, &item.PriceMin, &item.PriceMax,
		&item.CategoryID, &item.OwnerID, &item.CreatedAt, &item.Views, &item.Archived}
	err := row.Scan(append(dest, extra...)...)
	return item, err
}

func (r *ItemRepository) Insert(ctx context.Context, item *model.Item) error {
	query := `INSERT INTO items (` + itemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.Name, item.Description, item.PriceMin, item.PriceMax,
		item.CategoryID, item.OwnerID, item.CreatedAt, item.Views, item.Archived)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update writes the editable columns. Views are left to IncrementViews.
func (r *ItemRepository) Update(ctx context.Context, item *model.Item) error {
	query := `
		UPDATE items
		SET name = ?, description = ?, price_min = ?, price_max = ?, category_id = ?, archived = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.PriceMin, item.PriceMax,
		item.CategoryID, item.Archived, item.ID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Item, error) {
	out := make(map[string]*model.Item, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + itemColumns + ` FROM items WHERE id IN (` + placeholders(len(ids)) + `)`
	rows, err := r.db.QueryContext(ctx, query, stringArgs(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out[item.ID] = &item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive joins each non-archived item with its category name and the
// owner's coordinates, which stay nil until the owner is geocoded.
func (r *ItemRepository) ListActive(ctx context.Context, excludeOwnerID string) ([]model.ItemListing, error) {
	query := `
		SELECT i.id, i.name, i.description, i.price_min, i.price_max, i.category_id, i.owner_id,
		       i.created_at, i.views, i.archived, c.name, u.latitude, u.longitude
		FROM items i
		JOIN categories c ON c.id = i.category_id
		JOIN users u ON u.id = i.owner_id
		WHERE i.archived = FALSE AND i.owner_id <> ?
	`
	rows, err := r.db.QueryContext(ctx, query, excludeOwnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []model.ItemListing
	for rows.Next() {
		var categoryName string
		var lat, lon sql.NullFloat64
		item, err := scanItem(rows, &categoryName, &lat, &lon)
		if err != nil {
			return nil, err
		}
		l := model.ItemListing{Item: item, CategoryName: categoryName}
		if lat.Valid && lon.Valid {
			l.OwnerCoordinates = &model.Coordinates{Latitude: lat.Float64, Longitude: lon.Float64}
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}

// IncrementViews bumps the counter in a single statement so concurrent reads
// never lose an update.
func (r *ItemRepository) IncrementViews(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE items SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("increment views: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
