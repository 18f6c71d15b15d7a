package search

import "time"

// Status classifies the overall outcome of an aggregated search.
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

// Limits applied to incoming requests.
const (
	DefaultMaxResults = 10
	MaxResultsCap     = 50
)

// SearchRequest describes one aggregated search query.
type SearchRequest struct {
	Query      string   `json:"query"`
	Language   string   `json:"language,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
	Sources    []string `json:"sources,omitempty"`
}

// Normalized returns a copy with defaults applied and max_results capped.
func (r SearchRequest) Normalized() SearchRequest {
	if r.MaxResults == 0 {
		r.MaxResults = DefaultMaxResults
	}
	if r.MaxResults > MaxResultsCap {
		r.MaxResults = MaxResultsCap
	}
	return r
}

// SearchResult is the common shape every provider response is translated into.
type SearchResult struct {
	Title            string     `json:"title"`
	URL              string     `json:"url"`
	Snippet          string     `json:"snippet"`
	Source           string     `json:"source"`
	Language         string     `json:"language,omitempty"`
	CredibilityScore float64    `json:"credibility_score"`
	PublishedDate    *time.Time `json:"published_date,omitempty"`
}

// SearchResponse is the aggregated answer returned to the caller.
type SearchResponse struct {
	Status         Status         `json:"status"`
	Query          string         `json:"query"`
	ResultsCount   int            `json:"results_count"`
	ProcessingTime string         `json:"processing_time"`
	Results        []SearchResult `json:"results"`
}

// ProviderDescriptor holds the registry's view of one configured adapter.
type ProviderDescriptor struct {
	Name       string        `json:"name"`
	Categories []string      `json:"categories"`
	Enabled    bool          `json:"enabled"`
	Priority   int           `json:"priority"`
	Timeout    time.Duration `json:"-"`
}
