package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Store reads movies from a JSON document on every call.
// There is no write path; the file is the source of truth.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store backed by the JSON document at path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Load reads and parses the document. A document without a movies
// field is reported as malformed.
func (s *Store) Load(ctx context.Context) ([]Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read movie store: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse movie store: %w", err)
	}
	if doc.Movies == nil {
		return nil, errors.New("parse movie store: missing movies field")
	}

	movies := *doc.Movies
	if movies == nil {
		movies = []Movie{}
	}
	return movies, nil
}

// List returns the stored movies in file order, or the fallback listing
// when the document can't be read or parsed. It never fails.
func (s *Store) List(ctx context.Context) []Movie {
	movies, err := s.Load(ctx)
	if err != nil {
		s.logger.Warn("serving fallback movies", "path", s.path, "error", err)
		return FallbackMovies()
	}
	return movies
}

// Get finds a movie by id and returns it together with every other movie
// in listing order. The id is compared in its decimal string form.
func (s *Store) Get(ctx context.Context, id string) (Movie, []Movie, error) {
	movies := s.List(ctx)

	var (
		found  Movie
		ok     bool
		others = make([]Movie, 0, len(movies))
	)
	for _, m := range movies {
		if strconv.FormatInt(m.ID, 10) != id {
			others = append(others, m)
			continue
		}
		if !ok {
			found, ok = m, true
		}
	}
	if !ok {
		return Movie{}, nil, ErrNotFound
	}
	return found, others, nil
}
