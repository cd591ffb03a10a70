package dao

import (
	"context"
	"database/sql"
	"fmt"

	"swap-backend/model"
	"swap-backend/usecase"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, first_name, last_name, email, created_at, street, city, region, country, latitude, longitude`

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	var lat, lon sql.NullFloat64
	err := row.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt,
		&u.Location.Street, &u.Location.City, &u.Location.Region, &u.Location.Country, &lat, &lon)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if lat.Valid && lon.Valid {
		u.Coordinates = &model.Coordinates{Latitude: lat.Float64, Longitude: lon.Float64}
	}
	return &u, nil
}

func nullCoordinates(c *model.Coordinates) (sql.NullFloat64, sql.NullFloat64) {
	if c == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: c.Latitude, Valid: true}, sql.NullFloat64{Float64: c.Longitude, Valid: true}
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	lat, lon := nullCoordinates(user.Coordinates)
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.FirstName, user.LastName, user.Email, user.CreatedAt,
		user.Location.Street, user.Location.City, user.Location.Region, user.Location.Country, lat, lon)
	if err != nil {
		if isDuplicateEntry(err) {
			return usecase.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (r *UserRepository) UpdateLocation(ctx context.Context, userID string, loc model.Location, coords model.Coordinates) error {
	query := `
		UPDATE users
		SET street = ?, city = ?, region = ?, country = ?, latitude = ?, longitude = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, loc.Street, loc.City, loc.Region, loc.Country, coords.Latitude, coords.Longitude, userID)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

func (r *UserRepository) GetCoordinates(ctx context.Context, userID string) (*model.Coordinates, error) {
	var lat, lon sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `SELECT latitude, longitude FROM users WHERE id = ?`, userID).Scan(&lat, &lon)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if !lat.Valid || !lon.Valid {
		return nil, nil
	}
	return &model.Coordinates{Latitude: lat.Float64, Longitude: lon.Float64}, nil
}

// ConsultationRepository logs item detail reads by authenticated users.
type ConsultationRepository struct {
	db *sql.DB
}

func NewConsultationRepository(db *sql.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

func (r *ConsultationRepository) Insert(ctx context.Context, c *model.Consultation) error {
	query := `INSERT INTO consultations (id, user_id, item_id, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.ItemID, c.CreatedAt); err != nil {
		return fmt.Errorf("insert consultation: %w", err)
	}
	return nil
}
