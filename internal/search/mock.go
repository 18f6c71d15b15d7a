package search

import "fmt"

// MockResults generates a deterministic placeholder result set so the
// pipeline always has something to aggregate when no live provider answers.
func MockResults(req SearchRequest, count int) []SearchResult {
	req = req.Normalized()
	if count > req.MaxResults {
		count = req.MaxResults
	}
	results := make([]SearchResult, 0, count)
	for i := 1; i <= count; i++ {
		results = append(results, SearchResult{
			Title:            fmt.Sprintf("Result %d for '%s'", i, req.Query),
			URL:              fmt.Sprintf("https://example.com/result%d", i),
			Snippet:          fmt.Sprintf("This is a mock result %d for the query '%s'. This is generated as a fallback when no search API is available.", i, req.Query),
			Source:           "mock",
			Language:         req.Language,
			CredibilityScore: 0.5,
		})
	}
	return results
}
