package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"swap-backend/config"
	"swap-backend/db"
)

func main() {
	seed := flag.String("seed-categories", "", "comma-separated category names to create if missing")
	flag.Parse()

	logger := log.New(os.Stdout, "migrate ", log.LstdFlags)
	cfg := config.LoadDatabase()

	conn, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		logger.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		logger.Fatal("Failed to connect to DB:", err)
	}

	if err := db.Migrate(ctx, conn, logger); err != nil {
		logger.Fatal(err)
	}

	var names []string
	for _, n := range strings.Split(*seed, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) > 0 {
		added, err := db.SeedCategories(ctx, conn, names)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Printf("added %d of %d categories", added, len(names))
	}
	logger.Println("Migration completed.")
}
