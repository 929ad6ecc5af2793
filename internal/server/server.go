// Package server provides the HTTP REST API for resume parsing and
// candidate-job matching.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/parser"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/server/middleware"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
	"github.com/jonathan/resume-matcher/internal/vectorstore"
)

// Server is the HTTP server with its collaborators.
type Server struct {
	httpServer *http.Server

	parserA parser.ResumeParser
	parserB parser.ResumeParser
	scorer  *scoring.Scorer
	ranker  *ranking.Ranker

	embedder         embedding.Embedder
	index            *vectorstore.Memory
	retrievalTimeout time.Duration

	database    *db.DB
	rateLimiter *ratelimit.Limiter
	authHandler *AuthHandler
	jwtService  *JWTService
}

// New creates a server from the service configuration. The database and the
// Gemini embedder are optional: without a database there is no persistence
// or login, and without an API key the hashing fallback embedder is used.
func New(cfg *config.Config) (*Server, error) {
	dict := parser.DefaultDictionary()
	if cfg.DictionaryPath != "" {
		loaded, err := parser.LoadDictionary(cfg.DictionaryPath)
		if err != nil {
			return nil, err
		}
		dict = loaded
	}

	var embedder embedding.Embedder
	if cfg.GeminiAPIKey != "" {
		gemini, err := embedding.NewGeminiEmbedder(context.Background(), cfg.GeminiAPIKey, cfg.EmbeddingModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		embedder = gemini
	} else {
		log.Println("GEMINI_API_KEY not set, using hashing fallback embedder")
		embedder = embedding.NewHashingEmbedder(0)
	}
	index := vectorstore.NewMemory(embedder.Dimension())

	s := &Server{
		parserA:          parser.NewEntityParser(dict),
		parserB:          parser.NewPatternParser(dict),
		scorer:           scoring.NewDefaultScorer(),
		ranker:           ranking.NewRanker(scoring.NewDefaultScorer(), embedder, index, cfg.RetrievalTimeout),
		embedder:         embedder,
		index:            index,
		retrievalTimeout: cfg.RetrievalTimeout,
		rateLimiter:      ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(context.Background()); err != nil {
			database.Close()
			return nil, err
		}
		s.database = database
	}

	// Authentication is enabled only when JWT_SECRET is configured.
	if os.Getenv("JWT_SECRET") != "" {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
		s.authHandler = NewAuthHandler(s.database, passwordConfig, s.jwtService)
	} else {
		log.Println("JWT_SECRET not set, API endpoints are unauthenticated")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Scoring endpoints sit behind auth when it
// is configured.
func (s *Server) routes() *http.ServeMux {
	api := http.NewServeMux()
	api.HandleFunc("POST /parse", s.handleParse)
	api.HandleFunc("POST /compare", s.handleCompare)
	api.HandleFunc("POST /match", s.handleMatch)
	api.HandleFunc("POST /rank", s.handleRank)
	api.HandleFunc("GET /results/{job_id}", s.handleResults)

	var protected http.Handler = api
	if s.jwtService != nil {
		protected = middleware.Auth(s.jwtService.AsTokenValidator())(api)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	if s.authHandler != nil {
		mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	}
	mux.Handle("/", protected)
	return mux
}

// Start begins listening and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.database != nil {
		s.database.Close()
	}
	if s.embedder != nil {
		_ = s.embedder.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withRateLimit applies per-client rate limiting.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// clientID identifies the client by IP for rate limiting.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 with rate limit details.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
