package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"draftzi-backend/internal/auth"
	"draftzi-backend/internal/cache"
	"draftzi-backend/internal/handlers"
	"draftzi-backend/internal/services"
	"draftzi-backend/internal/storage"
)

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	tokens, err := auth.NewTokenManager([]byte(secret), auth.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to build token manager: %v", err)
	}

	// Database connection (with retries)
	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("postgres", buildDSN())
		if err == nil {
			break
		}
		log.Printf("DB connection attempt %d failed: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	store := storage.NewStorage(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := store.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Println("Schema ready")

	// Redis-backed rate limiting is optional; without it the auth endpoints
	// simply run unthrottled.
	var limiter cache.Client
	if os.Getenv("REDIS_URL") != "" {
		redisClient, err := cache.NewRedisClient()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		limiter = redisClient
	} else {
		log.Println("REDIS_URL not set; rate limiting disabled")
	}

	enhancer := services.FromEnv()

	authHandler := auth.NewHandler(store, tokens)
	h := handlers.New(store, enhancer)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	h.RegisterRoutes(r, authHandler, tokens, limiter)

	server := &http.Server{
		Addr:    ":" + getEnv("PORT", "8080"),
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("Shutting down...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

func buildDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return "host=" + getEnv("DB_HOST", "localhost") +
		" user=" + getEnv("DB_USER", "draftzi_user") +
		" password=" + getEnv("DB_PASSWORD", "draftzi_pass") +
		" dbname=" + getEnv("DB_NAME", "draftzi") +
		" sslmode=" + getEnv("DB_SSLMODE", "disable")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
