package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"
	"github.com/oklog/ulid/v2"
)

// MySQL errors that mean the statement was already applied.
const (
	errTableExists  = 1050
	errColumnExists = 1060
	errKeyExists    = 1061
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		username VARCHAR(150) NOT NULL UNIQUE,
		first_name VARCHAR(150) NOT NULL,
		last_name VARCHAR(150) NOT NULL,
		email VARCHAR(254) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		street VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(255) NOT NULL DEFAULT '',
		region VARCHAR(255) NOT NULL DEFAULT '',
		country VARCHAR(255) NOT NULL DEFAULT '',
		latitude DOUBLE NULL,
		longitude DOUBLE NULL
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		name VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS user_categories (
		user_id CHAR(26) NOT NULL,
		category_id CHAR(26) NOT NULL,
		PRIMARY KEY (user_id, category_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		name VARCHAR(50) NOT NULL,
		description TEXT NOT NULL,
		price_min INT NOT NULL DEFAULT 0,
		price_max INT NOT NULL DEFAULT 0,
		category_id CHAR(26) NOT NULL,
		owner_id CHAR(26) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		views INT NOT NULL DEFAULT 0,
		archived BOOLEAN NOT NULL DEFAULT FALSE,
		FOREIGN KEY (category_id) REFERENCES categories(id),
		FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS images (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		item_id CHAR(26) NOT NULL,
		url VARCHAR(500) NOT NULL,
		FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS likes (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		item_id CHAR(26) NOT NULL,
		user_id CHAR(26) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS offers (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		item_given_id CHAR(26) NOT NULL,
		item_received_id CHAR(26) NOT NULL,
		accepted BOOLEAN NOT NULL DEFAULT FALSE,
		answered BOOLEAN NOT NULL DEFAULT FALSE,
		comment TEXT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		FOREIGN KEY (item_given_id) REFERENCES items(id) ON DELETE CASCADE,
		FOREIGN KEY (item_received_id) REFERENCES items(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		user_id CHAR(26) NOT NULL COMMENT 'rated user',
		offer_id CHAR(26) NOT NULL,
		text TEXT NOT NULL,
		note TINYINT NOT NULL,
		UNIQUE KEY notes_offer_user (offer_id, user_id),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (offer_id) REFERENCES offers(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS consultations (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		user_id CHAR(26) NOT NULL,
		item_id CHAR(26) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		sender_id CHAR(26) NOT NULL,
		recipient_id CHAR(26) NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		FOREIGN KEY (sender_id) REFERENCES users(id) ON DELETE CASCADE,
		FOREIGN KEY (recipient_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id CHAR(26) PRIMARY KEY COMMENT 'ULID',
		item_id CHAR(26) NOT NULL,
		user_id CHAR(26) NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX items_owner ON items (owner_id)`,
	`CREATE INDEX messages_recipient ON messages (recipient_id)`,
}

// Migrate applies the schema. Statements that were already applied are
// skipped, so it can run on every deploy.
func Migrate(ctx context.Context, db *sql.DB, logger *log.Logger) error {
	for _, q := range schema {
		if _, err := db.ExecContext(ctx, q); err != nil {
			if alreadyApplied(err) {
				continue
			}
			return fmt.Errorf("migrate: %w", err)
		}
	}
	logger.Printf("schema up to date (%d statements)", len(schema))
	return nil
}

func alreadyApplied(err error) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return false
	}
	switch me.Number {
	case errTableExists, errColumnExists, errKeyExists:
		return true
	}
	return false
}

// SeedCategories inserts the named categories, leaving existing ones alone.
func SeedCategories(ctx context.Context, db *sql.DB, names []string) (int64, error) {
	var added int64
	for _, name := range names {
		res, err := db.ExecContext(ctx, `INSERT IGNORE INTO categories (id, name) VALUES (?, ?)`, ulid.Make().String(), name)
		if err != nil {
			return added, fmt.Errorf("seed category %q: %w", name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return added, err
		}
		added += n
	}
	return added, nil
}
