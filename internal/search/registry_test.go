package search

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(regs []Registration) []string {
	out := make([]string, 0, len(regs))
	for _, r := range regs {
		out = append(out, r.Descriptor.Name)
	}
	return out
}

func TestRegistryEligibleFor(t *testing.T) {
	web1 := register(&stubProvider{name: "web1", cats: []string{CategoryWeb}}, 1, time.Second)
	web2 := register(&stubProvider{name: "web2", cats: []string{CategoryWeb}}, 3, time.Second)
	news1 := register(&stubProvider{name: "news1", cats: []string{CategoryNews}}, 2, time.Second)
	both := register(&stubProvider{name: "both", cats: []string{CategoryWeb, CategoryNews}}, 4, time.Second)
	disabled := register(&stubProvider{name: "off", cats: []string{CategoryWeb}}, 0, time.Second)
	disabled.Descriptor.Enabled = false

	reg := NewRegistry(zerolog.Nop(), web2, news1, both, web1, disabled)

	t.Run("empty sources returns all enabled in priority order", func(t *testing.T) {
		assert.Equal(t, []string{"web1", "news1", "web2", "both"}, names(reg.EligibleFor(nil)))
	})

	t.Run("single category in priority order", func(t *testing.T) {
		assert.Equal(t, []string{"web1", "web2", "both"}, names(reg.EligibleFor([]string{"web"})))
	})

	t.Run("multi-category union dedupes shared adapters", func(t *testing.T) {
		got := names(reg.EligibleFor([]string{"news", "web"}))
		assert.Equal(t, []string{"news1", "both", "web1", "web2"}, got)
	})

	t.Run("unknown category ignored", func(t *testing.T) {
		got := names(reg.EligibleFor([]string{"video", "news"}))
		assert.Equal(t, []string{"news1", "both"}, got)
	})

	t.Run("only unknown categories yields nothing", func(t *testing.T) {
		assert.Empty(t, reg.EligibleFor([]string{"video"}))
	})

	t.Run("disabled adapter never returned", func(t *testing.T) {
		for _, r := range reg.EligibleFor(nil) {
			require.NotEqual(t, "off", r.Descriptor.Name)
		}
	})
}

func TestRegistryDescriptors(t *testing.T) {
	a := register(&stubProvider{name: "a"}, 2, time.Second)
	b := register(&stubProvider{name: "b"}, 1, time.Second)
	b.Descriptor.Enabled = false

	reg := NewRegistry(zerolog.Nop(), a, b)
	descs := reg.Descriptors()

	require.Len(t, descs, 2)
	assert.Equal(t, "b", descs[0].Name, "descriptors include disabled adapters")
	assert.False(t, descs[0].Enabled)
	assert.Equal(t, "a", descs[1].Name)
}
