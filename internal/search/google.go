package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GoogleProvider calls the Google Custom Search JSON API. Unlike the free
// adapter it reports hard failures; the orchestrator decides what to do with
// them.
type GoogleProvider struct {
	apiKey  string
	cx      string
	baseURL string
	client  *http.Client
}

func NewGoogleProvider(apiKey, cx string) *GoogleProvider {
	return &GoogleProvider{
		apiKey:  apiKey,
		cx:      cx,
		baseURL: "https://www.googleapis.com/customsearch/v1",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *GoogleProvider) Name() string { return "google" }

func (p *GoogleProvider) Categories() []string { return []string{CategoryWeb, CategoryNews} }

// Enabled reports whether both credentials are present.
func (p *GoogleProvider) Enabled() bool { return p.apiKey != "" && p.cx != "" }

func (p *GoogleProvider) Search(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	if !p.Enabled() {
		return nil, ErrMissingCredentials
	}
	req = req.Normalized()

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("cx", p.cx)
	params.Set("q", req.Query)
	if req.Language != "" {
		params.Set("lr", "lang_"+req.Language)
	}
	num := req.MaxResults
	if num > 10 { // API maximum per request
		num = 10
	}
	params.Set("num", fmt.Sprintf("%d", num))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}

	results := make([]SearchResult, 0, len(payload.Items))
	for _, item := range payload.Items {
		results = append(results, SearchResult{
			Title:            item.Title,
			URL:              item.Link,
			Snippet:          item.Snippet,
			Source:           p.Name(),
			Language:         req.Language,
			CredibilityScore: 0.9,
		})
	}
	return results, nil
}
