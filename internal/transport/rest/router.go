package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"apnidisha/internal/ivr"
	"apnidisha/internal/repository"
	"apnidisha/internal/service"
	"apnidisha/internal/transport/rest/handler"
	"apnidisha/internal/transport/rest/middleware"
	"apnidisha/internal/transport/ws"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService *service.AuthService
	CallService *service.CallService
	Controller  *ivr.Controller
	CollegeRepo repository.CollegeRepo
	ContentRepo repository.ContentRepo
	StreamRepo  repository.StreamRepo
	WSHub       *ws.Hub
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	voiceHandler := handler.NewVoiceHandler(c.Controller, c.CallService)
	collegeHandler := handler.NewCollegeHandler(c.CollegeRepo)
	contentHandler := handler.NewContentHandler(c.ContentRepo)
	streamHandler := handler.NewStreamHandler(c.StreamRepo)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Twilio webhooks: TwiML in, TwiML out. Twilio does neither CORS nor
	// bearer auth, so these stay public.
	api.HandleFunc("/voice/start", voiceHandler.Start).Methods("POST")
	api.HandleFunc("/voice/question", voiceHandler.Turn).Methods("POST")
	api.HandleFunc("/voice/trigger-call", voiceHandler.TriggerCall).Methods("POST", "OPTIONS")

	// Catalog reads are public
	api.HandleFunc("/colleges", collegeHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/colleges/interest-batch", collegeHandler.InterestBatch).Methods("POST", "OPTIONS")
	api.HandleFunc("/content", contentHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/streams", streamHandler.List).Methods("GET", "OPTIONS")

	// Monitor WebSocket (token in query param)
	api.HandleFunc("/ws/monitor", wsHandler.MonitorWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := api.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/colleges", collegeHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/content", contentHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/streams", streamHandler.Create).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
