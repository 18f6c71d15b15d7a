package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DuckDuckGoProvider is the free adapter. With a RapidAPI key it calls the
// DuckDuckGo zero-click API; without one (or on any failure) it scrapes the
// DuckDuckGo HTML endpoint; if that also fails it degrades to generated mock
// results. It is the one adapter that never reports an error to its caller.
type DuckDuckGoProvider struct {
	apiKey  string
	apiURL  string
	htmlURL string
	client  *http.Client
	log     zerolog.Logger
}

func NewDuckDuckGoProvider(apiKey string, log zerolog.Logger) *DuckDuckGoProvider {
	return &DuckDuckGoProvider{
		apiKey:  apiKey,
		apiURL:  "https://duckduckgo-duckduckgo-zero-click-info.p.rapidapi.com/",
		htmlURL: "https://html.duckduckgo.com/html/",
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("provider", "duckduckgo").Logger(),
	}
}

func (p *DuckDuckGoProvider) Name() string { return "duckduckgo" }

func (p *DuckDuckGoProvider) Categories() []string { return []string{CategoryWeb} }

func (p *DuckDuckGoProvider) Search(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	req = req.Normalized()

	if p.apiKey != "" {
		results, err := p.searchAPI(ctx, req)
		if err == nil && len(results) > 0 {
			return results, nil
		}
		if err != nil {
			p.log.Warn().Err(err).Msg("zero-click API failed, trying HTML endpoint")
		}
	}

	results, err := p.searchHTML(ctx, req)
	if err == nil && len(results) > 0 {
		return results, nil
	}
	if err != nil {
		p.log.Warn().Err(err).Msg("HTML endpoint failed, falling back to mock results")
	}

	return MockResults(req, req.MaxResults), nil
}

// searchAPI queries the zero-click info API via RapidAPI.
func (p *DuckDuckGoProvider) searchAPI(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	apiURL := fmt.Sprintf("%s?q=%s&format=json&no_html=1&skip_disambig=1", p.apiURL, url.QueryEscape(req.Query))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("X-RapidAPI-Key", p.apiKey)
	httpReq.Header.Set("X-RapidAPI-Host", "duckduckgo-duckduckgo-zero-click-info.p.rapidapi.com")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	type ddgTopic struct {
		Text     string     `json:"Text"`
		FirstURL string     `json:"FirstURL"`
		Topics   []ddgTopic `json:"Topics"`
	}
	var payload struct {
		Heading       string     `json:"Heading"`
		AbstractText  string     `json:"AbstractText"`
		AbstractURL   string     `json:"AbstractURL"`
		RelatedTopics []ddgTopic `json:"RelatedTopics"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}

	var results []SearchResult
	if payload.AbstractText != "" && payload.AbstractURL != "" {
		title := payload.Heading
		if title == "" {
			title = "Abstract"
		}
		results = append(results, SearchResult{
			Title:            title,
			URL:              payload.AbstractURL,
			Snippet:          payload.AbstractText,
			Source:           p.Name(),
			Language:         req.Language,
			CredibilityScore: 0.8,
		})
	}

	var appendTopic func(topic ddgTopic)
	appendTopic = func(topic ddgTopic) {
		if len(results) >= req.MaxResults {
			return
		}
		if topic.Text != "" && topic.FirstURL != "" {
			title, snippet := splitTopicText(topic.Text)
			results = append(results, SearchResult{
				Title:            title,
				URL:              topic.FirstURL,
				Snippet:          snippet,
				Source:           p.Name(),
				Language:         req.Language,
				CredibilityScore: 0.7,
			})
		}
		for _, child := range topic.Topics {
			appendTopic(child)
		}
	}
	for _, topic := range payload.RelatedTopics {
		appendTopic(topic)
	}

	return results, nil
}

// searchHTML scrapes the DuckDuckGo HTML endpoint, which needs no credentials.
func (p *DuckDuckGoProvider) searchHTML(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	endpoint := fmt.Sprintf("%s?q=%s", p.htmlURL, url.QueryEscape(req.Query))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var results []SearchResult
	doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(results) >= req.MaxResults {
			return false
		}
		link := s.Find(".result__a")
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		title := strings.TrimSpace(link.Text())
		if title == "" {
			return true
		}
		results = append(results, SearchResult{
			Title:            title,
			URL:              resolveRedirect(href),
			Snippet:          strings.TrimSpace(s.Find(".result__snippet").Text()),
			Source:           p.Name(),
			Language:         req.Language,
			CredibilityScore: 0.7,
		})
		return true
	})

	return results, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

func splitTopicText(text string) (title, snippet string) {
	parts := strings.SplitN(text, " - ", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(text), ""
}
