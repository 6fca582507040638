package v1

import (
	"net/http"

	"github.com/vmunix/moviecat/internal/stats"
)

func (s *Server) listStatistics(w http.ResponseWriter, r *http.Request) {
	var res stats.Result
	if category := r.URL.Query().Get("category"); category != "" {
		res = s.deps.Stats.ByCategory(r.Context(), category)
	} else {
		res = s.deps.Stats.Statistics(r.Context())
	}

	writeJSON(w, http.StatusOK, resultToResponse(res))
}

func (s *Server) getStatistic(w http.ResponseWriter, r *http.Request) {
	st, ok := s.deps.Stats.ByID(r.Context(), stats.StringID(r.PathValue("id")))
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Statistic not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) clearStatistics(w http.ResponseWriter, r *http.Request) {
	s.deps.Stats.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}

func resultToResponse(res stats.Result) statisticsResponse {
	resp := statisticsResponse{
		Statistics: res.Statistics,
		Source:     res.Source,
	}
	if resp.Statistics == nil {
		resp.Statistics = []stats.Statistic{}
	}
	if !res.FetchedAt.IsZero() {
		fetchedAt := res.FetchedAt
		resp.FetchedAt = &fetchedAt
	}
	return resp
}
