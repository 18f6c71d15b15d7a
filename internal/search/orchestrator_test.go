package search

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider is a scriptable adapter shared by the package tests.
type stubProvider struct {
	name    string
	cats    []string
	results []SearchResult
	err     error
	delay   time.Duration
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Categories() []string {
	if s.cats == nil {
		return []string{CategoryWeb}
	}
	return s.cats
}

func (s *stubProvider) Search(ctx context.Context, _ SearchRequest) ([]SearchResult, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func register(p *stubProvider, priority int, timeout time.Duration) Registration {
	return Registration{
		Descriptor: ProviderDescriptor{
			Name:       p.name,
			Categories: p.Categories(),
			Enabled:    true,
			Priority:   priority,
			Timeout:    timeout,
		},
		Provider: p,
	}
}

func result(source, url string, score float64) SearchResult {
	return SearchResult{
		Title:            "title",
		URL:              url,
		Snippet:          "snippet",
		Source:           source,
		CredibilityScore: score,
	}
}

func TestOrchestratorRun(t *testing.T) {
	req := SearchRequest{Query: "climate policy", MaxResults: 5}

	t.Run("all providers succeed", func(t *testing.T) {
		a := &stubProvider{name: "a", results: []SearchResult{result("a", "https://a.example/1", 0.9)}}
		b := &stubProvider{name: "b", results: []SearchResult{result("b", "https://b.example/1", 0.8)}}
		reg := NewRegistry(zerolog.Nop(), register(a, 1, time.Second), register(b, 2, time.Second))
		o := NewOrchestrator(reg, 2*time.Second, zerolog.Nop())

		sets, status := o.Run(context.Background(), req)

		assert.Equal(t, StatusSuccess, status)
		require.Len(t, sets, 2)
	})

	t.Run("one provider fails", func(t *testing.T) {
		a := &stubProvider{name: "a", results: []SearchResult{result("a", "https://a.example/1", 0.9)}}
		b := &stubProvider{name: "b", err: context.DeadlineExceeded}
		reg := NewRegistry(zerolog.Nop(), register(a, 1, time.Second), register(b, 2, time.Second))
		o := NewOrchestrator(reg, 2*time.Second, zerolog.Nop())

		sets, status := o.Run(context.Background(), req)

		assert.Equal(t, StatusPartial, status)
		require.Len(t, sets, 1)
		assert.Equal(t, "a", sets[0].Provider)
	})

	t.Run("slow provider is abandoned at the budget", func(t *testing.T) {
		fast := &stubProvider{name: "fast", results: []SearchResult{result("fast", "https://fast.example/1", 0.9)}}
		slow := &stubProvider{name: "slow", delay: 5 * time.Second, results: []SearchResult{result("slow", "https://slow.example/1", 0.8)}}
		reg := NewRegistry(zerolog.Nop(), register(fast, 1, 10*time.Second), register(slow, 2, 10*time.Second))
		o := NewOrchestrator(reg, 200*time.Millisecond, zerolog.Nop())

		start := time.Now()
		sets, status := o.Run(context.Background(), req)

		assert.Less(t, time.Since(start), 2*time.Second)
		assert.Equal(t, StatusPartial, status)
		require.Len(t, sets, 1)
		assert.Equal(t, "fast", sets[0].Provider)
	})

	t.Run("per-call timeout fails one provider only", func(t *testing.T) {
		fast := &stubProvider{name: "fast", results: []SearchResult{result("fast", "https://fast.example/1", 0.9)}}
		slow := &stubProvider{name: "slow", delay: time.Second, results: []SearchResult{result("slow", "https://slow.example/1", 0.8)}}
		reg := NewRegistry(zerolog.Nop(), register(fast, 1, time.Second), register(slow, 2, 50*time.Millisecond))
		o := NewOrchestrator(reg, 5*time.Second, zerolog.Nop())

		sets, status := o.Run(context.Background(), req)

		assert.Equal(t, StatusPartial, status)
		require.Len(t, sets, 1)
		assert.Equal(t, "fast", sets[0].Provider)
	})

	t.Run("all providers fail falls back to mock", func(t *testing.T) {
		a := &stubProvider{name: "a", err: context.DeadlineExceeded}
		b := &stubProvider{name: "b", err: context.DeadlineExceeded}
		reg := NewRegistry(zerolog.Nop(), register(a, 1, time.Second), register(b, 2, time.Second))
		o := NewOrchestrator(reg, time.Second, zerolog.Nop())

		sets, status := o.Run(context.Background(), req)

		assert.Equal(t, StatusPartial, status)
		require.Len(t, sets, 1)
		require.NotEmpty(t, sets[0].Results)
		for _, r := range sets[0].Results {
			assert.Equal(t, "mock", r.Source)
		}
	})

	t.Run("no eligible providers falls back to mock", func(t *testing.T) {
		reg := NewRegistry(zerolog.Nop())
		o := NewOrchestrator(reg, time.Second, zerolog.Nop())

		sets, status := o.Run(context.Background(), req)

		assert.Equal(t, StatusPartial, status)
		require.Len(t, sets, 1)
		assert.NotEmpty(t, sets[0].Results)
	})
}
