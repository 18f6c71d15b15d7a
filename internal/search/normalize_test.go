package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "query string dropped",
			raw:  "https://Example.COM/path?utm_source=x&b=2",
			want: "https://example.com/path",
		},
		{
			name: "fragment dropped",
			raw:  "https://example.com/path#section",
			want: "https://example.com/path",
		},
		{
			name: "trailing slash trimmed",
			raw:  "https://example.com/path/",
			want: "https://example.com/path",
		},
		{
			name: "host case folded, path case kept",
			raw:  "HTTPS://EXAMPLE.com/Path",
			want: "https://example.com/Path",
		},
		{
			name:    "relative url rejected",
			raw:     "/just/a/path",
			wantErr: true,
		},
		{
			name:    "empty rejected",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "garbage rejected",
			raw:     "://nope",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFingerprint(t *testing.T) {
	base := SearchRequest{Query: "climate policy", Language: "en", MaxResults: 5, Sources: []string{"web", "news"}}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Fingerprint(base), Fingerprint(base))
	})

	t.Run("query casing and whitespace ignored", func(t *testing.T) {
		other := base
		other.Query = "  Climate   POLICY "
		assert.Equal(t, Fingerprint(base), Fingerprint(other))
	})

	t.Run("source order ignored", func(t *testing.T) {
		other := base
		other.Sources = []string{"news", "web"}
		assert.Equal(t, Fingerprint(base), Fingerprint(other))
	})

	t.Run("max_results matters", func(t *testing.T) {
		other := base
		other.MaxResults = 7
		assert.NotEqual(t, Fingerprint(base), Fingerprint(other))
	})

	t.Run("language matters", func(t *testing.T) {
		other := base
		other.Language = "de"
		assert.NotEqual(t, Fingerprint(base), Fingerprint(other))
	})
}
