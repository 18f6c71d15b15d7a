package search

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ProviderResults is one adapter's contribution, in arrival order.
type ProviderResults struct {
	Provider string
	Priority int
	Results  []SearchResult
}

// Orchestrator fans a request out to the eligible adapters, bounds the whole
// fan-out with an overall budget, and tolerates individual failures. A slow
// adapter is abandoned when the budget elapses; its eventual result is
// discarded.
type Orchestrator struct {
	registry *Registry
	budget   time.Duration
	log      zerolog.Logger
}

func NewOrchestrator(registry *Registry, budget time.Duration, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{registry: registry, budget: budget, log: log}
}

type outcome struct {
	provider string
	priority int
	results  []SearchResult
	err      error
}

// Run dispatches one call per eligible adapter concurrently and collects
// whatever finishes inside the budget. It never returns an empty result set:
// when no adapter delivers, it falls back to generated mock results and
// reports partial status.
func (o *Orchestrator) Run(ctx context.Context, req SearchRequest) ([]ProviderResults, Status) {
	req = req.Normalized()
	eligible := o.registry.EligibleFor(req.Sources)

	ctx, cancel := context.WithTimeout(ctx, o.budget)
	defer cancel()

	// Buffered so abandoned calls can still complete without leaking.
	outcomes := make(chan outcome, len(eligible))
	for _, e := range eligible {
		go func(e Registration) {
			callCtx, callCancel := context.WithTimeout(ctx, e.Descriptor.Timeout)
			defer callCancel()
			results, err := e.Provider.Search(callCtx, req)
			outcomes <- outcome{
				provider: e.Descriptor.Name,
				priority: e.Descriptor.Priority,
				results:  results,
				err:      err,
			}
		}(e)
	}

	var collected []ProviderResults
	failed := 0
collect:
	for range eligible {
		select {
		case out := <-outcomes:
			if out.err != nil {
				failed++
				o.log.Warn().Err(out.err).Str("provider", out.provider).Msg("provider call failed")
				continue
			}
			collected = append(collected, ProviderResults{
				Provider: out.provider,
				Priority: out.priority,
				Results:  out.results,
			})
		case <-ctx.Done():
			o.log.Warn().Dur("budget", o.budget).Msg("search budget elapsed, abandoning in-flight providers")
			break collect
		}
	}

	if len(collected) == 0 {
		o.log.Warn().Str("query", req.Query).Msg("all providers failed, serving mock fallback")
		return []ProviderResults{{
			Provider: "mock",
			Priority: int(^uint(0) >> 1),
			Results:  MockResults(req, req.MaxResults),
		}}, StatusPartial
	}

	if failed > 0 || len(collected) < len(eligible) {
		return collected, StatusPartial
	}
	return collected, StatusSuccess
}
