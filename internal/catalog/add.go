package catalog

import (
	"encoding/json"
	"fmt"
)

// Ack acknowledges a movie submission.
type Ack struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Movie   json.RawMessage `json:"movie"`
}

// AddMovie parses a submitted movie and echoes it back.
// Nothing is persisted: the store is read-only.
func AddMovie(body []byte) (Ack, error) {
	if !json.Valid(body) {
		return Ack{}, fmt.Errorf("add movie: %w", ErrInvalidMovie)
	}
	return Ack{
		Success: true,
		Message: "Movie added successfully",
		Movie:   json.RawMessage(body),
	}, nil
}
