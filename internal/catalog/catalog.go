// Package catalog reads the movie listing from a local JSON document.
package catalog

import (
	"encoding/json"
	"errors"
)

var (
	// ErrNotFound indicates the requested movie doesn't exist.
	ErrNotFound = errors.New("movie not found")

	// ErrInvalidMovie indicates a movie submission that isn't valid JSON.
	ErrInvalidMovie = errors.New("invalid movie payload")
)

// Movie is a single catalog entry.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url"`
	StreamURL   string `json:"stream_url"`

	// Extra holds any other fields the store carries, passed through as is.
	Extra map[string]json.RawMessage `json:"-"`
}

// movieFields has Movie's layout without its JSON methods.
type movieFields Movie

var knownFields = []string{"id", "title", "description", "cover_url", "stream_url"}

func (m *Movie) UnmarshalJSON(data []byte) error {
	var f movieFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range knownFields {
		delete(all, k)
	}

	f.Extra = nil
	if len(all) > 0 {
		f.Extra = all
	}
	*m = Movie(f)
	return nil
}

func (m Movie) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(movieFields(m))
	if err != nil || len(m.Extra) == 0 {
		return known, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range m.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// document is the on-disk layout of the movie store.
type document struct {
	Movies *[]Movie `json:"movies"`
}

// FallbackMovies returns the listing served when the store can't be read.
func FallbackMovies() []Movie {
	return []Movie{
		{
			ID:          1,
			Title:       "The Golden Pear",
			Description: "A heartwarming story about a magical pear that brings people together.",
			CoverURL:    "https://images.unsplash.com/photo-1568702846914-96b305d2aaeb?w=400&h=600&fit=crop",
			StreamURL:   "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		},
		{
			ID:          2,
			Title:       "Pear Dreams",
			Description: "An adventure through orchards and dreams where reality meets fantasy.",
			CoverURL:    "https://images.unsplash.com/photo-1574856344991-aaa31b6f4ce3?w=400&h=600&fit=crop",
			StreamURL:   "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		},
	}
}
