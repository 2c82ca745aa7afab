package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionCloseIsNilSafe(t *testing.T) {
	// Close is deferred on every pipeline exit path, including ones where
	// session setup failed partway; it must tolerate missing handles.
	assert.NotPanics(t, func() {
		s := &Session{}
		s.Close()
	})
}

func TestPickUserAgentFallsBackToDefault(t *testing.T) {
	bm := &BrowserManager{}
	assert.Equal(t, defaultUserAgent, bm.pickUserAgent())
}

func TestPickUserAgentUsesPool(t *testing.T) {
	pool := []string{"ua-one", "ua-two", "ua-three"}
	bm := &BrowserManager{userAgents: pool}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ua := bm.pickUserAgent()
		assert.Contains(t, pool, ua)
		seen[ua] = true
	}
	// 100 draws from a pool of three misses a value with probability ~2e-18.
	assert.Len(t, seen, len(pool))
}
