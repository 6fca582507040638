// Package v1 implements the JSON API consumed by the catalog frontend.
package v1

import (
	"encoding/json"
	"net/http"
)

// Config holds API server configuration.
type Config struct {
	Version string
}

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	cfg  Config
}

// New creates a new API server.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Server{deps: deps, cfg: cfg}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Movies
	mux.HandleFunc("GET /api/movies", s.listMovies)
	mux.HandleFunc("POST /api/movies", s.addMovie)
	mux.HandleFunc("GET /api/movies/search", s.searchMovies)
	mux.HandleFunc("GET /api/movies/{id}", s.getMovie)

	// Statistics
	mux.HandleFunc("GET /api/statistics", s.requireStats(s.listStatistics))
	mux.HandleFunc("GET /api/statistics/{id}", s.requireStats(s.getStatistic))
	mux.HandleFunc("DELETE /api/statistics/cache", s.requireStats(s.clearStatistics))

	// System
	mux.HandleFunc("GET /api/status", s.getStatus)
}

// Handler returns a mux with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return mux
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:     "ok",
		Version:    s.cfg.Version,
		Statistics: s.deps.Stats != nil,
	})
}
