package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"

	"swap-backend/config"
	"swap-backend/controller"
	"swap-backend/dao"
	"swap-backend/pkg/geo"
	"swap-backend/usecase"
)

func main() {
	logger := log.New(os.Stdout, "swap ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	// 1. DB Connection
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("Failed to connect to DB:", err)
	}
	logger.Println("Connected to Database!")

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// both caches fall back to their source when redis is away
		logger.Printf("redis unavailable at %s: %v", cfg.RedisAddr, err)
	}

	// 2. Dependency Injection
	google, err := geo.NewGoogleGeocoder(cfg.GoogleMapsAPIKey)
	if err != nil {
		logger.Fatal(err)
	}
	geocoder := geo.NewCachedGeocoder(google, redisClient, cfg.GeocodeCacheTTL, logger)

	repos := usecase.Repositories{
		Items:         dao.NewItemRepository(db),
		Categories:    dao.NewCategoryRepository(db),
		Interests:     dao.NewCachedInterestRepository(dao.NewInterestRepository(db), redisClient, cfg.InterestCacheTTL, logger),
		Images:        dao.NewImageRepository(db),
		Likes:         dao.NewLikeRepository(db),
		Offers:        dao.NewOfferRepository(db),
		Notes:         dao.NewNoteRepository(db),
		Users:         dao.NewUserRepository(db),
		Consultations: dao.NewConsultationRepository(db),
		Messages:      dao.NewMessageRepository(db),
		Comments:      dao.NewCommentRepository(db),
	}

	// 3. Routing
	router := controller.NewRouter(repos, geocoder, []byte(cfg.JWTSecret), logger)

	// 4. Start Server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Printf("Server starting on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("could not listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Println("server is shutting down")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}
