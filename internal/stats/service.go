package stats

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -destination=mocks/mock_fetcher.go -package=mocks . Fetcher

// Fetcher retrieves the current statistics from the remote source.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Statistic, error)
}

// Source records where a Result came from.
type Source string

const (
	SourceLive     Source = "live"     // fetched for this call
	SourceCached   Source = "cached"   // served from a fresh cache slot
	SourceStale    Source = "stale"    // fetch failed, expired slot served
	SourceFallback Source = "fallback" // fetch failed, nothing cached
)

// Result carries statistics together with their provenance.
type Result struct {
	Statistics []Statistic
	Source     Source
	FetchedAt  time.Time // zero for fallback data
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source (for testing).
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// Service is the single point of access to current statistics.
// Callers always get a result; remote failures are absorbed.
type Service struct {
	fetcher Fetcher
	cache   *Cache
	logger  *slog.Logger
	now     func() time.Time
	group   singleflight.Group
}

const refreshKey = "statistics"

// NewService composes a fetcher and a cache slot.
func NewService(fetcher Fetcher, cache *Cache, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cache == nil {
		cache = NewCache(DefaultTTL)
	}
	s := &Service{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Statistics returns the cached sequence while it is fresh, otherwise
// fetches. On fetch failure it serves the expired slot, then canned data.
// Concurrent refreshes share one remote call.
func (s *Service) Statistics(ctx context.Context) Result {
	if entries, fetchedAt, ok := s.cache.Fresh(s.now()); ok {
		return Result{Statistics: entries, Source: SourceCached, FetchedAt: fetchedAt}
	}

	// The flight is shared, so it must not die with the caller that started it.
	// The fetch is still bounded by the client timeout.
	flightCtx := context.WithoutCancel(ctx)
	v, _, _ := s.group.Do(refreshKey, func() (any, error) {
		// A refresh may have landed between the check above and this flight.
		if entries, fetchedAt, ok := s.cache.Fresh(s.now()); ok {
			return Result{Statistics: entries, Source: SourceCached, FetchedAt: fetchedAt}, nil
		}
		return s.refresh(flightCtx), nil
	})
	res := v.(Result)
	res.Statistics = cloneStatistics(res.Statistics)
	return res
}

func (s *Service) refresh(ctx context.Context) Result {
	fetched, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Error("fetch statistics failed", "error", err)

		if entries, fetchedAt, ok := s.cache.Latest(); ok {
			s.logger.Warn("serving stale data",
				"fetched_at", fetchedAt,
				"age", s.now().Sub(fetchedAt).Round(time.Second).String(),
				"count", len(entries))
			return Result{Statistics: entries, Source: SourceStale, FetchedAt: fetchedAt}
		}

		s.logger.Warn("serving fallback statistics")
		return Result{Statistics: FallbackStatistics(), Source: SourceFallback}
	}

	if fetched == nil {
		fetched = []Statistic{}
	}
	fetchedAt := s.now()
	s.cache.Store(fetched, fetchedAt)
	s.logger.Debug("statistics refreshed", "count", len(fetched))

	return Result{Statistics: cloneStatistics(fetched), Source: SourceLive, FetchedAt: fetchedAt}
}

// ByCategory returns the statistics whose category equals category exactly.
func (s *Service) ByCategory(ctx context.Context, category string) Result {
	res := s.Statistics(ctx)
	filtered := make([]Statistic, 0, len(res.Statistics))
	for _, st := range res.Statistics {
		if st.Category == category {
			filtered = append(filtered, st)
		}
	}
	res.Statistics = filtered
	return res
}

// ByID returns the first statistic whose id matches by string form.
func (s *Service) ByID(ctx context.Context, id ID) (Statistic, bool) {
	for _, st := range s.Statistics(ctx).Statistics {
		if st.ID.Equal(id) {
			return st, true
		}
	}
	return Statistic{}, false
}

// ClearCache empties the slot so the next Statistics call fetches.
func (s *Service) ClearCache() {
	s.cache.Clear()
}
