package jobs

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// defaultLimit is the result-count hint when the caller sends none.
const defaultLimit = 4

// Server exposes the postings lookup as a small HTTP API, so a web
// frontend can share the same recommendation logic as the TUI.
type Server struct {
	client Client
	log    *zap.Logger
}

// NewServer builds a Server around the given postings client.
func NewServer(client Client, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{client: client, log: log}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/", s.handleHealth)
	r.Get("/api/jobs", s.handleJobs)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "MindPath backend is running"})
}

// handleJobs serves GET /api/jobs?code=RIA&limit=4. Provider failures
// are logged and absorbed into an empty list; the endpoint never
// surfaces an upstream error to the caller.
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing code parameter"})
		return
	}
	limit := parseLimit(r.URL.Query().Get("limit"), defaultLimit)

	postings, err := s.client.Search(r.Context(), code, limit)
	if err != nil {
		s.log.Warn("job search failed", zap.String("code", code), zap.Error(err))
		postings = nil
	}
	if postings == nil {
		postings = []Posting{}
	}

	s.log.Info("served job search",
		zap.String("code", code),
		zap.Int("limit", limit),
		zap.Int("results", len(postings)),
	)
	writeJSON(w, http.StatusOK, postings)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
