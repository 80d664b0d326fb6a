package scoreboard

import (
	"context"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/26ideas-youngfounders/scoreboard-api/internal/cache"
	"github.com/26ideas-youngfounders/scoreboard-api/internal/scores"
)

// Fetcher is the upstream dependency: one call returning raw rows or a
// classified error.
type Fetcher interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// Result is the outcome of a successful retrieval.
type Result struct {
	Records []scores.Record
	// Cached is true when the records came out of the store rather than a
	// fresh upstream fetch.
	Cached bool
	// Stale is true when the records were past their TTL and served anyway
	// because the upstream fetch failed.
	Stale bool
}

// Service coordinates cache lookups and single-flight upstream fetches.
//
// Per key, at most one upstream fetch is in flight at a time; callers that
// arrive while a fetch is underway wait for it and share its outcome.
// Distinct keys never serialize against each other.
type Service struct {
	upstream Fetcher
	store    *cache.Store[[]scores.Record]
	key      string
	group    singleflight.Group
}

// New creates a Service backed by the given upstream and store. The store is
// injected so tests can run against isolated caches.
func New(upstream Fetcher, store *cache.Store[[]scores.Record], key string) *Service {
	return &Service{upstream: upstream, store: store, key: key}
}

// flightResult carries the shared outcome of one single-flight fetch.
type flightResult struct {
	records []scores.Record
	cached  bool
}

// Scores returns the sanitized scoreboard rows.
//
// A fresh cache entry is served immediately with no upstream call. On a
// miss or an expired entry the rows are fetched, sanitized, and stored; an
// empty sanitized result is still a valid, cacheable answer. When the fetch
// fails and an older entry exists, the stale records are served instead of
// the error; without one the classified error propagates unchanged.
func (s *Service) Scores(ctx context.Context) (Result, error) {
	if ent, ok := s.store.Get(s.key); ok && s.store.IsValid(s.key) {
		return Result{Records: ent.Value, Cached: true}, nil
	}

	v, err, _ := s.group.Do(s.key, func() (any, error) {
		// A caller queued behind a fetch that already settled reuses its
		// entry instead of issuing another upstream call.
		if ent, ok := s.store.Get(s.key); ok && s.store.IsValid(s.key) {
			return flightResult{records: ent.Value, cached: true}, nil
		}
		rows, err := s.upstream.FetchRows(ctx)
		if err != nil {
			return nil, err
		}
		records := scores.Sanitize(rows)
		s.store.Put(s.key, records)
		return flightResult{records: records}, nil
	})
	if err != nil {
		if ent, ok := s.store.Get(s.key); ok {
			log.Printf("serving stale scoreboard data for %s: %v", s.key, err)
			return Result{Records: ent.Value, Cached: true, Stale: true}, nil
		}
		return Result{}, err
	}

	fr := v.(flightResult)
	return Result{Records: fr.records, Cached: fr.cached}, nil
}
