package db

import (
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestMigrateSkipsAppliedStatements(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	for i := range schema {
		exp := mock.ExpectExec(regexp.QuoteMeta(schema[i]))
		if i == len(schema)-1 {
			exp.WillReturnError(&mysql.MySQLError{Number: errKeyExists, Message: "Duplicate key name"})
			continue
		}
		exp.WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := Migrate(context.Background(), conn, log.New(io.Discard, "", 0)); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestMigrateStopsOnError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	mock.ExpectExec(regexp.QuoteMeta(schema[0])).WillReturnError(errors.New("access denied"))

	if err := Migrate(context.Background(), conn, log.New(io.Discard, "", 0)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSeedCategories(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	q := regexp.QuoteMeta("INSERT IGNORE INTO categories (id, name) VALUES (?, ?)")
	mock.ExpectExec(q).WithArgs(sqlmock.AnyArg(), "Books").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(sqlmock.AnyArg(), "Games").WillReturnResult(sqlmock.NewResult(0, 0))

	added, err := SeedCategories(context.Background(), conn, []string{"Books", "Games"})
	if err != nil {
		t.Fatal(err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
}
