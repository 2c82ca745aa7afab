package scraper

import (
	"log"
	"regexp"

	"github.com/go-rod/rod"
)

// Marketplaces occasionally serve a CAPTCHA or anti-bot interstitial instead
// of the product page. Extraction then degrades to all-defaults, which is
// hard to diagnose from field logs alone, so the pipeline checks rendered
// pages against known bot-wall phrases and flags them loudly.
var botWallPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)captcha`),
	regexp.MustCompile(`(?i)verify you are human`),
	regexp.MustCompile(`(?i)robot check`),
	regexp.MustCompile(`(?i)access denied`),
	regexp.MustCompile(`(?i)checking your browser`),
	regexp.MustCompile(`(?i)too many requests`),
	regexp.MustCompile(`(?i)unusual traffic`),
}

// warnIfBotWall logs when the current page looks like an anti-bot
// interstitial. Detection is advisory only; extraction proceeds and its
// field defaults absorb the damage.
func warnIfBotWall(page *rod.Page, url string) {
	html, err := page.HTML()
	if err != nil {
		return
	}

	// Interstitials are small; a full product page matching one of these
	// phrases in passing is possible but rare.
	if len(html) > 200_000 {
		return
	}

	for _, pattern := range botWallPatterns {
		if pattern.MatchString(html) {
			log.Printf("⚠️  Possible bot wall on %s (matched %q)", url, pattern.String())
			return
		}
	}
}
