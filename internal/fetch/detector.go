package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Detector decides whether a statically fetched page is good enough or must
// be re-fetched through the browser session.
type Detector struct {
	// MinHTMLBytes flags skeleton pages that hydrate client-side.
	MinHTMLBytes int
	// MustSelectors are elements a usable page always carries.
	MustSelectors []string
	// Keywords in the HTML force promotion regardless of structure.
	Keywords []string

	Logger *zap.Logger
}

// NewDetector returns a Detector with the thresholds tuned for the site's
// detail pages.
func NewDetector(minBytes int, selectors, keywords []string, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{
		MinHTMLBytes:  minBytes,
		MustSelectors: selectors,
		Keywords:      keywords,
		Logger:        logger,
	}
}

// NeedsSession reports whether html must be re-fetched in the browser.
func (d *Detector) NeedsSession(html string) bool {
	if IsChallenge(html) {
		d.Logger.Debug("promoting fetch: challenge markers present")
		return true
	}
	if d.MinHTMLBytes > 0 && len(html) < d.MinHTMLBytes {
		d.Logger.Debug("promoting fetch: body below threshold", zap.Int("bytes", len(html)))
		return true
	}
	for _, kw := range d.Keywords {
		if strings.Contains(html, kw) {
			d.Logger.Debug("promoting fetch: keyword hit", zap.String("keyword", kw))
			return true
		}
	}
	if len(d.MustSelectors) == 0 {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return true
	}
	for _, sel := range d.MustSelectors {
		if doc.Find(sel).Length() > 0 {
			return false
		}
	}
	d.Logger.Debug("promoting fetch: no required selector matched")
	return true
}
