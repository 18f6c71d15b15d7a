package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// BaiduProvider calls the Baidu realtime search API. Each search first
// exchanges the API key pair for an OAuth access token, then posts the query.
type BaiduProvider struct {
	apiKey    string
	secretKey string
	tokenURL  string
	searchURL string
	client    *http.Client
}

func NewBaiduProvider(apiKey, secretKey string) *BaiduProvider {
	return &BaiduProvider{
		apiKey:    apiKey,
		secretKey: secretKey,
		tokenURL:  "https://aip.baidubce.com/oauth/2.0/token",
		searchURL: "https://aip.baidubce.com/rpc/2.0/creation/v1/search/realtime",
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *BaiduProvider) Name() string { return "baidu" }

func (p *BaiduProvider) Categories() []string { return []string{CategoryWeb} }

func (p *BaiduProvider) Enabled() bool { return p.apiKey != "" && p.secretKey != "" }

func (p *BaiduProvider) Search(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	if !p.Enabled() {
		return nil, ErrMissingCredentials
	}
	req = req.Normalized()

	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	num := req.MaxResults
	if num > 10 {
		num = 10
	}
	body, err := json.Marshal(map[string]any{
		"query": req.Query,
		"num":   num,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := p.searchURL + "?access_token=" + url.QueryEscape(token)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var payload struct {
		Result []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}

	lang := req.Language
	if lang == "" {
		lang = "zh"
	}
	results := make([]SearchResult, 0, len(payload.Result))
	for _, item := range payload.Result {
		results = append(results, SearchResult{
			Title:            item.Title,
			URL:              item.URL,
			Snippet:          item.Content,
			Source:           p.Name(),
			Language:         lang,
			CredibilityScore: 0.8,
		})
	}
	return results, nil
}

func (p *BaiduProvider) accessToken(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s?grant_type=client_credentials&client_id=%s&client_secret=%s",
		p.tokenURL, url.QueryEscape(p.apiKey), url.QueryEscape(p.secretKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}
	return payload.AccessToken, nil
}
