package api

import "github.com/OgArise/cool-app/internal/search"

// searchBody is the JSON request accepted by the search endpoint.
// MaxResults is a pointer so an absent field (default applies) can be told
// apart from an explicit zero (rejected).
type searchBody struct {
	Query      string   `json:"query"`
	Language   string   `json:"language"`
	MaxResults *int     `json:"max_results"`
	Sources    []string `json:"sources"`
}

// ErrorResponse is returned when a request fails validation.
type ErrorResponse struct {
	Status       search.Status         `json:"status"`
	Query        string                `json:"query"`
	ResultsCount int                   `json:"results_count"`
	Results      []search.SearchResult `json:"results"`
	Message      string                `json:"message"`
}

// SourcesResponse lists the configured providers.
type SourcesResponse struct {
	Sources []search.ProviderDescriptor `json:"sources"`
}
