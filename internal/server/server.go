package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lazypower/wordbook/internal/dictionary"
	"github.com/lazypower/wordbook/internal/vocab"
)

// Server is the wordbook HTTP API server.
//
// Every request loads the vocabulary file, works on it, and saves it back
// before responding, so the CLI and the server can be used in turn. mu keeps
// two requests from interleaving their load and save.
type Server struct {
	file        *vocab.File
	lookup      dictionary.Lookuper
	maxAttempts int
	router      chi.Router
	version     string
	started     time.Time
	mu          sync.Mutex
}

// New creates a new Server over the given vocabulary file. lookup may be nil,
// in which case definition routes answer 503.
func New(file *vocab.File, lookup dictionary.Lookuper, maxAttempts int, version string) *Server {
	s := &Server{
		file:        file,
		lookup:      lookup,
		maxAttempts: maxAttempts,
		version:     version,
		started:     time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/words", s.handleListWords)
		r.Post("/words", s.handleRegisterWord)
		r.Delete("/words/{label}", s.handleDeleteWord)
		r.Post("/words/{label}/answers", s.handleAnswer)
		r.Get("/words/{label}/definition", s.handleDefinition)

		r.Get("/select", s.handleSelect)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"version":   s.version,
		"uptime":    time.Since(s.started).Seconds(),
		"data_path": s.file.Path,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
