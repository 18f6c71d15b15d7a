package search

import (
	"context"
	"errors"
)

// Provider categories understood by the registry.
const (
	CategoryWeb  = "web"
	CategoryNews = "news"
)

var (
	// ErrInvalidRequest is the only engine error that reaches the caller.
	ErrInvalidRequest = errors.New("invalid search request")
	// ErrMissingCredentials marks an adapter whose required keys are absent.
	ErrMissingCredentials = errors.New("missing provider credentials")
)

// Provider is one search backend. Implementations translate the common
// request into a provider-specific call and the provider payload back into
// the common result shape. They must honor ctx cancellation, must not retry
// internally, and must not keep per-request state.
type Provider interface {
	Name() string
	Categories() []string
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)
}
