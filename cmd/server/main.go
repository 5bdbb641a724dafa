package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/fitlogapp/fitlog-backend/internal/config"
	"github.com/fitlogapp/fitlog-backend/internal/database"
	"github.com/fitlogapp/fitlog-backend/internal/handlers"
	"github.com/fitlogapp/fitlog-backend/internal/middleware"
	"github.com/fitlogapp/fitlog-backend/internal/routes"
	"github.com/fitlogapp/fitlog-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Redis backs rate limiting only; run without it when not configured.
	rateLimited := false
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Printf("⚠️  WARNING: Redis unavailable, rate limiting disabled: %v", err)
		} else {
			rateLimited = true
			defer database.DisconnectRedis()
		}
	} else {
		log.Println("REDIS_URI not set, rate limiting disabled")
	}

	mongoStore := store.NewMongo(database.DB)
	h := handlers.New(mongoStore, mongoStore)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestLogger)
	if rateLimited {
		r.Use(middleware.RateLimit(database.RedisClient))
		log.Println("✅ Per-IP rate limiting enabled")
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, h)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/users")
	log.Println("  GET  /api/users")
	log.Println("  POST /api/users/{_id}/exercises")
	log.Println("  GET  /api/users/{_id}/logs")

	log.Printf("🚀 Exercise tracker backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
