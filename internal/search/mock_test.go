package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockResults(t *testing.T) {
	req := SearchRequest{Query: "climate policy", Language: "en", MaxResults: 3}

	results := MockResults(req, 10)
	require.Len(t, results, 3, "count is capped by max_results")

	for i, r := range results {
		assert.Equal(t, "mock", r.Source)
		assert.Equal(t, "en", r.Language)
		assert.Equal(t, 0.5, r.CredibilityScore)
		assert.Contains(t, r.Title, "climate policy")
		assert.Contains(t, r.URL, "example.com")
		_, err := NormalizeURL(r.URL)
		require.NoError(t, err, "mock result %d must carry a valid url", i)
	}

	assert.Equal(t, results, MockResults(req, 10), "mock results are deterministic")
}
