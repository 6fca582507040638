package titlematch

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// MatchConfidence represents the confidence level of a title match.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // Score < 0.70
	ConfidenceLow                           // Score >= 0.70
	ConfidenceMedium                        // Score >= 0.85
	ConfidenceHigh                          // Score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

func confidenceFor(score float64) MatchConfidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// Match is a candidate title scored against a query.
type Match struct {
	Index      int             // Position of the candidate in the input slice
	Title      string          // The candidate title as given
	Score      float64         // Jaro-Winkler similarity (0.0-1.0)
	Confidence MatchConfidence // Confidence level based on score
}

// Score returns the similarity between a query and a title.
// The query is compared to the whole cleaned title and to every run of
// consecutive title words of the same length as the query, keeping the best.
// Jaro-Winkler favors prefix matches, which suits partially typed titles.
func Score(query, title string) float64 {
	q := CleanTitle(query)
	t := CleanTitle(title)
	if q == "" || t == "" {
		return 0
	}

	best := float64(edlib.JaroWinklerSimilarity(q, t))

	qWords := len(strings.Fields(q))
	tFields := strings.Fields(t)
	for i := 0; i+qWords <= len(tFields); i++ {
		window := strings.Join(tFields[i:i+qWords], " ")
		if s := float64(edlib.JaroWinklerSimilarity(q, window)); s > best {
			best = s
		}
	}
	return best
}

// Suggest ranks candidates against query and returns up to limit matches
// with at least low confidence, best first. Ties keep input order.
func Suggest(query string, candidates []string, limit int) []Match {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	var matches []Match
	for i, candidate := range candidates {
		score := Score(query, candidate)
		conf := confidenceFor(score)
		if conf == ConfidenceNone {
			continue
		}
		matches = append(matches, Match{
			Index:      i,
			Title:      candidate,
			Score:      score,
			Confidence: conf,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
