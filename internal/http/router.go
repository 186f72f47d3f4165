package http

import (
	"freight-backend/internal/handlers"
	"freight-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	tripHandler *handlers.TripHandler,
	userHandler *handlers.UserHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Session routes - any authenticated user
	sessionAPI := r.PathPrefix("/api/auth").Subrouter()
	sessionAPI.Use(authMiddleware.Authenticate)
	sessionAPI.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	sessionAPI.HandleFunc("/me", authHandler.Me).Methods("GET")

	// Trips - any authenticated user may read and write
	tripsAPI := r.PathPrefix("/api/trips").Subrouter()
	tripsAPI.Use(authMiddleware.Authenticate)
	tripsAPI.HandleFunc("", tripHandler.ListTrips).Methods("GET")
	tripsAPI.HandleFunc("", tripHandler.CreateTrip).Methods("POST")
	tripsAPI.HandleFunc("/{id}", tripHandler.GetTrip).Methods("GET")
	tripsAPI.HandleFunc("/{id}", tripHandler.UpdateTrip).Methods("PUT")

	// Analytics - admin only
	analyticsAPI := r.PathPrefix("/api/analytics").Subrouter()
	analyticsAPI.Use(authMiddleware.Authenticate, authMiddleware.RequireAdmin)
	analyticsAPI.HandleFunc("/dashboard", analyticsHandler.Dashboard).Methods("GET")
	analyticsAPI.HandleFunc("/parties", analyticsHandler.Parties).Methods("GET")
	analyticsAPI.HandleFunc("/owners", analyticsHandler.Owners).Methods("GET")

	// User management - admin only
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate, authMiddleware.RequireAdmin)
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")

	// Reports - admin only
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate, authMiddleware.RequireAdmin)
	reportsAPI.HandleFunc("/trips.csv", reportHandler.TripsCSV).Methods("GET")
	reportsAPI.HandleFunc("/trips.pdf", reportHandler.TripsPDF).Methods("GET")

	return r
}
