package v1

import "net/http"

// requireStats wraps a handler and returns 503 if statistics are not configured.
func (s *Server) requireStats(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Stats == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Statistics source not configured")
			return
		}
		next(w, r)
	}
}
