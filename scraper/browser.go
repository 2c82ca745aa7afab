package scraper

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// BrowserManager owns the shared browser process and hands out isolated
// sessions. A session is exclusively owned by exactly one pipeline operation
// and is destroyed when that operation ends, success or not.
type BrowserManager struct {
	browser    *rod.Browser
	userAgents []string
}

// Session is an isolated rendering context with its own page and a randomized
// user agent. Sessions are never pooled or reused.
type Session struct {
	browser *rod.Browser
	page    *rod.Page
}

// NewBrowserManager launches the browser. Uses system Chromium when running
// in Docker, auto-detects locally (same setup as the rest of our scrapers).
func NewBrowserManager(headless bool, userAgents []string) (*BrowserManager, error) {
	l := launcher.New().
		Headless(headless).
		NoSandbox(true).
		Leakless(false)

	if _, err := os.Stat("/usr/bin/chromium-browser"); err == nil {
		l = l.Bin("/usr/bin/chromium-browser")
		log.Printf("Using system Chromium in Docker environment")
	} else {
		log.Printf("Using auto-detected Chromium (local environment)")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %v", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %v", err)
	}

	return &BrowserManager{
		browser:    browser,
		userAgents: userAgents,
	}, nil
}

// OpenSession creates a fresh incognito context with a user agent picked
// uniformly at random from the configured pool and a fixed 1920x1080
// viewport.
func (bm *BrowserManager) OpenSession() (*Session, error) {
	incognito, err := bm.browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("failed to open incognito context: %v", err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %v", err)
	}

	ua := bm.pickUserAgent()
	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: ua}); err != nil {
		page.Close()
		return nil, fmt.Errorf("failed to set user agent: %v", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1920,
		Height:            1080,
		DeviceScaleFactor: 1,
	}); err != nil {
		page.Close()
		return nil, fmt.Errorf("failed to set viewport: %v", err)
	}

	// Hide the automation fingerprint before any site script runs.
	_, err = page.EvalOnNewDocument(`
		Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
		Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
		Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
		window.chrome = { runtime: {} };
	`)
	if err != nil {
		page.Close()
		return nil, fmt.Errorf("failed to install stealth script: %v", err)
	}

	return &Session{browser: incognito, page: page}, nil
}

// pickUserAgent selects uniformly from the pool, falling back to a single
// default when the pool is empty.
func (bm *BrowserManager) pickUserAgent() string {
	if len(bm.userAgents) == 0 {
		return defaultUserAgent
	}
	return bm.userAgents[rand.Intn(len(bm.userAgents))]
}

// Close shuts the shared browser process down.
func (bm *BrowserManager) Close() {
	if bm.browser != nil {
		if err := bm.browser.Close(); err != nil {
			log.Printf("Failed to close browser: %v", err)
		}
	}
}

// Page exposes the session's page for extraction.
func (s *Session) Page() *rod.Page {
	return s.page
}

// Navigate loads a URL and waits for minimal DOM readiness, not full load.
func (s *Session) Navigate(url string, timeout time.Duration) error {
	page := s.page.Timeout(timeout)
	wait := page.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %v", url, err)
	}
	wait()
	return nil
}

// SettleNetwork waits for the page's network activity to quiet down and then
// applies a short fixed delay. SPA marketplaces need this before their
// product data exists in the DOM; we trade latency for completeness.
func (s *Session) SettleNetwork(timeout, settleDelay time.Duration) {
	if err := s.page.Timeout(timeout).WaitStable(500 * time.Millisecond); err != nil {
		log.Printf("Page did not settle within %s, extracting anyway: %v", timeout, err)
	}
	time.Sleep(settleDelay)
}

// Close destroys the session's page and incognito context. Safe to defer on
// every exit path. The context must be disposed explicitly; closing the page
// alone leaves it alive in the browser process.
func (s *Session) Close() {
	if s.page != nil {
		if err := s.page.Close(); err != nil {
			log.Printf("Failed to close page: %v", err)
		}
	}
	if s.browser != nil && s.browser.BrowserContextID != "" {
		err := proto.TargetDisposeBrowserContext{BrowserContextID: s.browser.BrowserContextID}.Call(s.browser)
		if err != nil {
			log.Printf("Failed to dispose browser context: %v", err)
		}
	}
}
