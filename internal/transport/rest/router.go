package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"aimaturity/internal/service"
	"aimaturity/internal/transport/rest/handler"
	"aimaturity/internal/transport/rest/middleware"
	"aimaturity/internal/transport/ws"
	"aimaturity/pkg/logger"
	"aimaturity/pkg/metrics"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	WSHub             *ws.Hub
	Metrics           *metrics.Manager
	Logger            logger.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	sessionHandler := handler.NewSessionHandler(c.AssessmentService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	catalogHandler := handler.NewCatalogHandler()
	voiceHandler := handler.NewVoiceHandler(c.AssessmentService)
	wsHandler := ws.NewHandler(c.WSHub, c.AssessmentService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)
	r.Use(middleware.Metrics(c.Metrics))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	v1.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/messages", sessionHandler.Message).Methods("POST", "OPTIONS")

	v1.HandleFunc("/assessments", assessmentHandler.Run).Methods("POST", "OPTIONS")

	v1.HandleFunc("/catalog/dimensions", catalogHandler.ListDimensions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog/dimensions/{dimensionId}", catalogHandler.GetDimension).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog/maturity-levels", catalogHandler.ListMaturityLevels).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog/maturity-levels/{level}", catalogHandler.GetMaturityLevel).Methods("GET", "OPTIONS")

	// Voice provider webhook
	v1.HandleFunc("/voice/webhook", voiceHandler.Webhook).Methods("POST", "OPTIONS")

	// WebSocket chat
	v1.HandleFunc("/ws/chat", wsHandler.ChatWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Prometheus scrape endpoint
	r.Handle("/metrics", c.Metrics.Handler()).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{organizationId}", assessmentHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
