package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Service is the façade the HTTP layer talks to. It wires the cache, the
// orchestrator and the aggregator together.
type Service struct {
	cache        *Cache
	orchestrator *Orchestrator
	aggregator   *Aggregator
	ttl          time.Duration
	group        singleflight.Group
	log          zerolog.Logger
}

func NewService(cache *Cache, orchestrator *Orchestrator, aggregator *Aggregator, ttl time.Duration, log zerolog.Logger) *Service {
	return &Service{
		cache:        cache,
		orchestrator: orchestrator,
		aggregator:   aggregator,
		ttl:          ttl,
		log:          log,
	}
}

// Execute answers one search request. Only ErrInvalidRequest reaches the
// caller as an error; provider-level failures degrade the response to
// partial status instead.
func (s *Service) Execute(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	start := time.Now()

	if strings.TrimSpace(req.Query) == "" {
		return SearchResponse{}, fmt.Errorf("%w: query is required", ErrInvalidRequest)
	}
	if req.MaxResults <= 0 {
		return SearchResponse{}, fmt.Errorf("%w: max_results must be positive", ErrInvalidRequest)
	}
	req = req.Normalized()

	requestID := uuid.NewString()
	log := s.log.With().Str("request_id", requestID).Str("query", req.Query).Logger()

	fingerprint := Fingerprint(req)
	if cached, ok := s.cache.Get(fingerprint); ok {
		cached.ProcessingTime = formatDuration(time.Since(start))
		log.Debug().Str("fingerprint", fingerprint).Msg("cache hit")
		return cached, nil
	}

	// Collapse simultaneous misses on the same fingerprint into one fan-out.
	v, err, _ := s.group.Do(fingerprint, func() (any, error) {
		sets, status := s.orchestrator.Run(ctx, req)
		results := s.aggregator.Merge(sets, req.MaxResults)
		resp := SearchResponse{
			Status:         status,
			Query:          req.Query,
			ResultsCount:   len(results),
			ProcessingTime: formatDuration(time.Since(start)),
			Results:        results,
		}
		s.cache.Put(fingerprint, resp, s.ttl)
		return resp, nil
	})
	if err != nil {
		return SearchResponse{}, err
	}

	resp := v.(SearchResponse)
	resp.ProcessingTime = formatDuration(time.Since(start))
	log.Info().
		Str("status", string(resp.Status)).
		Int("results", resp.ResultsCount).
		Dur("elapsed", time.Since(start)).
		Msg("search completed")
	return resp, nil
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
