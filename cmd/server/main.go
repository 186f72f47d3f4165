package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"freight-backend/internal/config"
	"freight-backend/internal/database"
	"freight-backend/internal/db"
	"freight-backend/internal/handlers"
	"freight-backend/internal/health"
	h "freight-backend/internal/http"
	"freight-backend/internal/middleware"
	"freight-backend/internal/repositories"
	"freight-backend/internal/services"
	"freight-backend/internal/session"
	"freight-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Run database migrations from the embedded filesystem
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Session store: Redis when reachable, in-memory fallback otherwise
	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour
	var sessionStore session.Store
	if redisStore, err := session.NewRedisStore(cfg, ttl); err != nil {
		log.Printf("[Redis] Unavailable: %v (sessions will not survive restarts)", err)
		sessionStore = session.NewMemoryStore(ttl)
	} else {
		log.Println("[Redis] Session store connected")
		sessionStore = redisStore
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	tripRepo := repositories.NewTripRepository(pool)
	analyticsRepo := repositories.NewAnalyticsRepository(pool)

	// Initialize services
	userService := services.NewUserService(userRepo)
	tripService := services.NewTripService(tripRepo)
	analyticsService := services.NewAnalyticsService(analyticsRepo)
	reportService := services.NewReportService(tripRepo)

	// Bootstrap the default admin account if no "admin" user exists yet
	if err := userService.BootstrapAdmin(ctx, cfg.Bootstrap.AdminPassword); err != nil {
		log.Fatalf("Failed to bootstrap admin user: %v", err)
	}

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(sessionStore)
	corsMiddleware := middleware.NewCORS(cfg)
	healthChecker := health.NewHealthChecker(pool)

	authHandler := handlers.NewAuthHandler(userService, sessionStore, ttl)
	tripHandler := handlers.NewTripHandler(tripService)
	userHandler := handlers.NewUserHandler(userService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(authHandler, tripHandler, userHandler, analyticsHandler, reportHandler, healthHandler, authMiddleware)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
