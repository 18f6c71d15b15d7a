package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// NewsProvider serves the "news" category by scraping headlines from a
// configured news front page. Results only count as matches when the query
// terms appear in the headline or blurb.
type NewsProvider struct {
	sourceURL string
	domains   []string
}

func NewNewsProvider(sourceURL string) (*NewsProvider, error) {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid news source url %q", sourceURL)
	}
	domains := []string{u.Host, u.Hostname(), strings.TrimPrefix(u.Hostname(), "www.")}
	return &NewsProvider{sourceURL: sourceURL, domains: domains}, nil
}

func (p *NewsProvider) Name() string { return "news" }

func (p *NewsProvider) Categories() []string { return []string{CategoryNews} }

func (p *NewsProvider) Search(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	req = req.Normalized()

	c := colly.NewCollector(
		colly.AllowedDomains(p.domains...),
		colly.UserAgent(userAgent),
		colly.MaxDepth(1),
	)
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, context.DeadlineExceeded
		}
		c.SetRequestTimeout(remaining)
	}

	terms := strings.Fields(strings.ToLower(req.Query))
	now := time.Now()
	var results []SearchResult
	seen := make(map[string]struct{})

	c.OnHTML(".story, .article, .news-item, .card, .teaser, .post, .news-block", func(e *colly.HTMLElement) {
		if len(results) >= req.MaxResults {
			return
		}

		var title string
		for _, selector := range []string{"h1", "h2", "h3", "h4", ".title", ".headline"} {
			title = strings.TrimSpace(e.ChildText(selector))
			if title != "" && len(title) >= 10 {
				break
			}
		}
		if title == "" {
			return
		}
		title = strings.Join(strings.Fields(title), " ")

		link := e.ChildAttr("a", "href")
		if link == "" {
			return
		}
		link = e.Request.AbsoluteURL(link)
		if _, dup := seen[link]; dup {
			return
		}

		blurb := strings.TrimSpace(e.ChildText("p, .summary, .intro, .teaser-text, .excerpt, .description"))
		if len(blurb) > 200 {
			blurb = blurb[:200] + "..."
		}

		if !matchesQuery(terms, title, blurb) {
			return
		}

		seen[link] = struct{}{}
		published := now
		results = append(results, SearchResult{
			Title:            title,
			URL:              link,
			Snippet:          blurb,
			Source:           p.Name(),
			Language:         req.Language,
			CredibilityScore: 0.6,
			PublishedDate:    &published,
		})
	})

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("status %d: %w", r.StatusCode, err)
	})

	if err := c.Visit(p.sourceURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", p.sourceURL, err)
	}
	c.Wait()

	if visitErr != nil && len(results) == 0 {
		return nil, visitErr
	}
	return results, nil
}

// matchesQuery reports whether any query term appears in the headline or
// blurb. An empty query matches everything.
func matchesQuery(terms []string, title, blurb string) bool {
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(title + " " + blurb)
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}
