package catalog

import (
	"context"

	"github.com/vmunix/moviecat/pkg/titlematch"
)

// maxSuggestions bounds the "did you mean" list returned on an empty search.
const maxSuggestions = 3

// SearchResult holds the movies whose titles contain the term and,
// when there are none, the closest titles by fuzzy match.
type SearchResult struct {
	Query       string
	Movies      []Movie
	Suggestions []Movie
}

// Search filters the listing by case-insensitive substring match on title.
// An empty term returns the whole listing.
func (s *Store) Search(ctx context.Context, term string) SearchResult {
	movies := s.List(ctx)
	result := SearchResult{Query: term, Movies: Filter(movies, term)}

	if len(result.Movies) == 0 && term != "" {
		result.Suggestions = Suggest(movies, term, maxSuggestions)
	}
	return result
}

// Filter keeps the movies whose titles contain term, in order.
func Filter(movies []Movie, term string) []Movie {
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if titlematch.Contains(m.Title, term) {
			out = append(out, m)
		}
	}
	return out
}

// Suggest returns up to limit movies whose titles resemble term, best first.
func Suggest(movies []Movie, term string, limit int) []Movie {
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}

	matches := titlematch.Suggest(term, titles, limit)
	out := make([]Movie, 0, len(matches))
	for _, match := range matches {
		out = append(out, movies[match.Index])
	}
	return out
}
