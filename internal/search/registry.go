package search

import (
	"sort"

	"github.com/rs/zerolog"
)

// Registration pairs one adapter with its descriptor.
type Registration struct {
	Descriptor ProviderDescriptor
	Provider   Provider
}

// Registry holds the configured adapters. It is built once at startup and
// read-only afterwards; an adapter whose credentials were absent at
// construction stays disabled for the process lifetime.
type Registry struct {
	entries []Registration
	log     zerolog.Logger
}

func NewRegistry(log zerolog.Logger, entries ...Registration) *Registry {
	sorted := append([]Registration(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Descriptor.Priority != sorted[j].Descriptor.Priority {
			return sorted[i].Descriptor.Priority < sorted[j].Descriptor.Priority
		}
		return sorted[i].Descriptor.Name < sorted[j].Descriptor.Name
	})
	for _, e := range sorted {
		log.Info().
			Str("provider", e.Descriptor.Name).
			Bool("enabled", e.Descriptor.Enabled).
			Int("priority", e.Descriptor.Priority).
			Strs("categories", e.Descriptor.Categories).
			Msg("registered search provider")
	}
	return &Registry{entries: sorted, log: log}
}

// Descriptors returns the descriptors of every configured adapter, enabled
// or not, in priority order.
func (r *Registry) Descriptors() []ProviderDescriptor {
	out := make([]ProviderDescriptor, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Descriptor)
	}
	return out
}

// EligibleFor returns the enabled adapters able to serve the requested
// categories, in priority order. Unknown category names are ignored. An
// empty category set means every enabled adapter.
func (r *Registry) EligibleFor(sources []string) []Registration {
	if len(sources) == 0 {
		var out []Registration
		for _, e := range r.entries {
			if e.Descriptor.Enabled {
				out = append(out, e)
			}
		}
		return out
	}

	var out []Registration
	picked := make(map[string]struct{})
	for _, category := range sources {
		for _, e := range r.entries {
			if !e.Descriptor.Enabled || !covers(e.Descriptor.Categories, category) {
				continue
			}
			if _, dup := picked[e.Descriptor.Name]; dup {
				continue
			}
			picked[e.Descriptor.Name] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

func covers(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
