package v1

import (
	"context"
	"errors"

	"github.com/vmunix/moviecat/internal/catalog"
	"github.com/vmunix/moviecat/internal/stats"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// MovieCatalog reads the movie listing.
type MovieCatalog interface {
	List(ctx context.Context) []catalog.Movie
	Get(ctx context.Context, id string) (catalog.Movie, []catalog.Movie, error)
	Search(ctx context.Context, term string) catalog.SearchResult
}

// StatisticsService serves cached statistics.
type StatisticsService interface {
	Statistics(ctx context.Context) stats.Result
	ByCategory(ctx context.Context, category string) stats.Result
	ByID(ctx context.Context, id stats.ID) (stats.Statistic, bool)
	ClearCache()
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required
	Catalog MovieCatalog

	// Optional (nil if no statistics source is configured)
	Stats StatisticsService
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.Join(ErrMissingDependency, errors.New("movie catalog is required"))
	}
	return nil
}
