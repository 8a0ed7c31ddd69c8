package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/config"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/dialogflow"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/intent"
	"github.com/elatifinajib/tourism-bot-backend-sub000/internal/metrics"
)

// Pinger reports whether the attractions backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	cfg        *config.Config
	dispatcher *intent.Dispatcher
	backend    Pinger
	httpServer *http.Server
	startTime  time.Time
	logger     *slog.Logger
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string                   `json:"status"`
	Version   string                   `json:"version"`
	Uptime    string                   `json:"uptime"`
	Services  map[string]ServiceHealth `json:"services"`
	Timestamp string                   `json:"timestamp"`
}

// ServiceHealth represents a service health status
type ServiceHealth struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// New creates a new HTTP server
func New(cfg *config.Config, dispatcher *intent.Dispatcher, backend Pinger, logger *slog.Logger) *Server {
	s := &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		backend:    backend,
		logger:     logger,
		startTime:  time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.webhookHandler)
	mux.HandleFunc("/health", s.healthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", s.rootHandler)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// webhookHandler handles fulfillment requests from the conversational
// platform. The reply is always HTTP 200 with a fulfillment payload;
// everything that can go wrong becomes reply text, not a status code.
func (s *Server) webhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dialogflow.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	name := req.QueryResult.Intent.DisplayName
	params := req.QueryResult.StringParameters()

	reply, err := s.dispatcher.Handle(r.Context(), name, params)
	outcome := "ok"
	switch {
	case errors.Is(err, intent.ErrUnknownIntent):
		outcome = "unknown_intent"
		reply = intent.ReplyUnknownIntent
	case err != nil:
		outcome = "error"
		s.logger.Error("Fulfillment failed", "intent", name, "error", err)
		reply = intent.ReplyFailure
	}
	metrics.WebhookRequests.WithLabelValues(name, outcome).Inc()

	response := dialogflow.NewTextResponse(reply)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// healthHandler handles health check requests
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	services := map[string]ServiceHealth{
		"http": {Healthy: true, Message: "HTTP server running"},
	}

	if s.backend != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.backend.Ping(ctx); err != nil {
			services["backend"] = ServiceHealth{Healthy: false, Message: err.Error()}
		} else {
			services["backend"] = ServiceHealth{Healthy: true, Message: "Attractions backend reachable"}
		}
	}

	response := HealthResponse{
		Status:    "healthy",
		Version:   "1.0.0",
		Uptime:    time.Since(s.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  services,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// rootHandler answers the platform's plain liveness probe
func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
