package search

import (
	"net/url"
	"sort"
	"strings"
	"time"
)

// ScoreConfig drives the credibility heuristic applied to results whose
// adapter did not supply a score.
type ScoreConfig struct {
	Base          float64
	DomainWeights map[string]float64 // host suffix -> weight, negative to demote
	RecencyBonus  float64
	RecencyWindow time.Duration
}

func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		Base: 0.5,
		DomainWeights: map[string]float64{
			".gov":          0.3,
			".edu":          0.3,
			"wikipedia.org": 0.2,
			"reuters.com":   0.2,
			"apnews.com":    0.2,
			"bbc.co.uk":     0.2,
		},
		RecencyBonus:  0.1,
		RecencyWindow: 30 * 24 * time.Hour,
	}
}

// Aggregator merges per-provider result sets into the final ordered list.
type Aggregator struct {
	scores ScoreConfig
	now    func() time.Time
}

func NewAggregator(scores ScoreConfig) *Aggregator {
	return &Aggregator{scores: scores, now: time.Now}
}

type rankedResult struct {
	SearchResult
	key      string // normalized URL
	priority int
	arrival  int
	pos      int // rank within the provider's own result list
}

// Merge flattens, deduplicates, scores, sorts and truncates. Results with
// malformed URLs are dropped. For a duplicate URL the entry with the higher
// credibility score wins; score ties go to the adapter with the better
// priority, then earlier arrival, then lexically smaller adapter name.
func (a *Aggregator) Merge(sets []ProviderResults, maxResults int) []SearchResult {
	var flat []rankedResult
	for arrival, set := range sets {
		for pos, r := range set.Results {
			key, err := NormalizeURL(r.URL)
			if err != nil {
				continue
			}
			if r.CredibilityScore == 0 {
				r.CredibilityScore = a.score(r)
			}
			flat = append(flat, rankedResult{
				SearchResult: r,
				key:          key,
				priority:     set.Priority,
				arrival:      arrival,
				pos:          pos,
			})
		}
	}

	byKey := make(map[string]rankedResult, len(flat))
	for _, r := range flat {
		existing, ok := byKey[r.key]
		if !ok || betterDuplicate(r, existing) {
			byKey[r.key] = r
		}
	}

	deduped := make([]rankedResult, 0, len(byKey))
	for _, r := range byKey {
		deduped = append(deduped, r)
	}
	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].CredibilityScore != deduped[j].CredibilityScore {
			return deduped[i].CredibilityScore > deduped[j].CredibilityScore
		}
		if deduped[i].priority != deduped[j].priority {
			return deduped[i].priority < deduped[j].priority
		}
		if deduped[i].Source != deduped[j].Source {
			return deduped[i].Source < deduped[j].Source
		}
		if deduped[i].arrival != deduped[j].arrival {
			return deduped[i].arrival < deduped[j].arrival
		}
		return deduped[i].pos < deduped[j].pos
	})

	if maxResults > 0 && len(deduped) > maxResults {
		deduped = deduped[:maxResults]
	}
	out := make([]SearchResult, 0, len(deduped))
	for _, r := range deduped {
		out = append(out, r.SearchResult)
	}
	return out
}

func betterDuplicate(candidate, existing rankedResult) bool {
	if candidate.CredibilityScore != existing.CredibilityScore {
		return candidate.CredibilityScore > existing.CredibilityScore
	}
	if candidate.priority != existing.priority {
		return candidate.priority < existing.priority
	}
	if candidate.arrival != existing.arrival {
		return candidate.arrival < existing.arrival
	}
	return candidate.Source < existing.Source
}

// score computes the heuristic credibility for a result whose adapter did
// not supply one, clamped to [0, 1].
func (a *Aggregator) score(r SearchResult) float64 {
	s := a.scores.Base

	if u, err := url.Parse(r.URL); err == nil {
		host := strings.ToLower(u.Hostname())
		for suffix, weight := range a.scores.DomainWeights {
			if strings.HasSuffix(host, suffix) {
				s += weight
			}
		}
	}

	if r.PublishedDate != nil && a.now().Sub(*r.PublishedDate) <= a.scores.RecencyWindow {
		s += a.scores.RecencyBonus
	}

	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
