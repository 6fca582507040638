// internal/api/v1/types.go
package v1

import (
	"time"

	"github.com/vmunix/moviecat/internal/catalog"
	"github.com/vmunix/moviecat/internal/stats"
)

// movieDetailResponse is the response for GET /movies/{id}.
type movieDetailResponse struct {
	Movie  catalog.Movie   `json:"movie"`
	Others []catalog.Movie `json:"others"`
}

// searchResponse is the response for GET /movies/search.
type searchResponse struct {
	Query       string          `json:"query"`
	Movies      []catalog.Movie `json:"movies"`
	Suggestions []catalog.Movie `json:"suggestions"`
}

// statisticsResponse is the response for GET /statistics.
type statisticsResponse struct {
	Statistics []stats.Statistic `json:"statistics"`
	Source     stats.Source      `json:"source"`
	FetchedAt  *time.Time        `json:"fetched_at,omitempty"`
}

type statusResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Statistics bool   `json:"statistics"`
}
