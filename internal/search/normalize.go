package search

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// NormalizeURL reduces a result URL to its dedup identity: scheme, case-folded
// host and path. Query string and fragment are dropped. Returns an error for
// anything that does not parse as an absolute URL.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("malformed url %q: %w", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("url %q is not absolute", raw)
	}
	path := strings.TrimSuffix(u.Path, "/")
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + path, nil
}

// Fingerprint derives the deterministic cache key for a request. The query is
// lower-cased and whitespace-collapsed and sources are sorted, so requests that
// differ only in casing, spacing or source order share an entry.
func Fingerprint(req SearchRequest) string {
	req = req.Normalized()

	query := strings.Join(strings.Fields(strings.ToLower(req.Query)), " ")
	sources := append([]string(nil), req.Sources...)
	sort.Strings(sources)

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d|%s", query, req.Language, req.MaxResults, strings.Join(sources, ","))
	return hex.EncodeToString(h.Sum(nil))
}
