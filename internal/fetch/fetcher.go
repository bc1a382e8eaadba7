// Package fetch retrieves pages. A colly-based fast path serves static
// listings; a shared headless-browser session renders the script-heavy detail
// pages and handles the site's verification interstitial.
package fetch

import (
	"context"
	"errors"
)

// Page is a fetched page. FinalURL differs from URL after redirects.
type Page struct {
	URL      string
	FinalURL string
	HTML     string
}

// Fetcher retrieves a page.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Page, error)
	Close(ctx context.Context) error
}

var (
	// ErrSessionUnavailable means the browser session could not start or has
	// died; the crawl cannot continue without it.
	ErrSessionUnavailable = errors.New("browser session unavailable")
	// ErrChallengeUnresolved means the verification interstitial survived
	// every clearing attempt.
	ErrChallengeUnresolved = errors.New("verification challenge unresolved")
)
