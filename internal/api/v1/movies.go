package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/vmunix/moviecat/internal/catalog"
)

// maxMovieBody caps the size of a submitted movie.
const maxMovieBody = 1 << 20

// listMovies always answers 200; store failures are served as fallback movies.
func (s *Server) listMovies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Catalog.List(r.Context()))
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	movie, others, err := s.deps.Catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "CATALOG_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, movieDetailResponse{Movie: movie, Others: others})
}

func (s *Server) searchMovies(w http.ResponseWriter, r *http.Request) {
	result := s.deps.Catalog.Search(r.Context(), r.URL.Query().Get("q"))

	resp := searchResponse{
		Query:       result.Query,
		Movies:      result.Movies,
		Suggestions: result.Suggestions,
	}
	if resp.Movies == nil {
		resp.Movies = []catalog.Movie{}
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []catalog.Movie{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// addMovie acknowledges a submission without storing it. Any failure is
// reported with the same bare message and no detail.
func (s *Server) addMovie(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxMovieBody))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to add movie"})
		return
	}

	ack, err := catalog.AddMovie(body)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to add movie"})
		return
	}

	writeJSON(w, http.StatusOK, ack)
}
