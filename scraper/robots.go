package scraper

import (
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

const (
	robotsCacheTTL     = 24 * time.Hour
	robotsFetchTimeout = 5 * time.Second
	crawlerUserAgent   = "DealscoutBot"
)

// RobotsGuard fetches, caches and evaluates robots.txt rules per origin.
// It is the only fatal gate in the pipeline: a disallowed result aborts an
// operation before any page is rendered. Everything that can go wrong with
// the check itself fails open, so transient robots-service issues never
// block scraping.
type RobotsGuard struct {
	client *http.Client

	mu    sync.RWMutex
	cache map[string]robotsCacheEntry
}

type robotsCacheEntry struct {
	fetched time.Time
	// nil rules mean the origin allows everything (missing robots.txt).
	rules *robotstxt.RobotsData
}

// NewRobotsGuard constructs a guard with an empty cache. Passing a nil
// client installs one with the bounded fetch timeout.
func NewRobotsGuard(client *http.Client) *RobotsGuard {
	if client == nil {
		client = &http.Client{Timeout: robotsFetchTimeout}
	}
	return &RobotsGuard{
		client: client,
		cache:  make(map[string]robotsCacheEntry),
	}
}

// IsAllowed reports whether the crawler identity may fetch the target URL
// according to the origin's robots.txt.
func (g *RobotsGuard) IsAllowed(rawURL string) bool {
	target, err := url.Parse(rawURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		log.Printf("Robots check skipped for unparsable URL %q, allowing", rawURL)
		return true
	}

	origin := target.Scheme + "://" + target.Host
	entry, ok := g.lookup(origin)
	if !ok {
		entry = g.fetch(origin)
	}

	if entry.rules == nil {
		return true
	}

	group := entry.rules.FindGroup(crawlerUserAgent)
	if group == nil {
		return true
	}

	path := target.Path
	if path == "" {
		path = "/"
	}
	return group.Test(path)
}

// lookup returns a cached entry younger than the TTL.
func (g *RobotsGuard) lookup(origin string) (robotsCacheEntry, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	entry, ok := g.cache[origin]
	if !ok || time.Since(entry.fetched) >= robotsCacheTTL {
		return robotsCacheEntry{}, false
	}
	return entry, true
}

// fetch retrieves and parses the origin's robots.txt, caching the outcome.
// A missing document and any fetch or parse failure both resolve to
// allow-all; only the former is cached, so a flaky origin gets re-checked.
func (g *RobotsGuard) fetch(origin string) robotsCacheEntry {
	entry := robotsCacheEntry{fetched: time.Now()}

	resp, err := g.client.Get(origin + "/robots.txt")
	if err != nil {
		log.Printf("Failed to fetch robots.txt for %s: %v (failing open)", origin, err)
		return entry
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No robots.txt means crawling is fully allowed.
		g.store(origin, entry)
		return entry
	}

	rules, err := robotstxt.FromResponse(resp)
	if err != nil {
		log.Printf("Failed to parse robots.txt for %s: %v (failing open)", origin, err)
		return entry
	}

	entry.rules = rules
	g.store(origin, entry)
	return entry
}

func (g *RobotsGuard) store(origin string, entry robotsCacheEntry) {
	g.mu.Lock()
	g.cache[origin] = entry
	g.mu.Unlock()
}
