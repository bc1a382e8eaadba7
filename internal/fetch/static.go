package fetch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/city58/jobharvest/internal/metrics"
)

// StaticFetcher retrieves pages over plain HTTP with colly. It cannot run
// scripts or hold the challenge cookie, so it only serves as the fast path in
// front of the browser session.
type StaticFetcher struct {
	base   *colly.Collector
	logger *zap.Logger
}

// NewStaticFetcher builds the base collector; each fetch clones it so
// callbacks never stack up.
func NewStaticFetcher(userAgent string, timeout time.Duration, logger *zap.Logger) *StaticFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)
	if timeout > 0 {
		c.SetRequestTimeout(timeout)
	}
	return &StaticFetcher{base: c, logger: logger}
}

// Fetch downloads rawURL without rendering.
func (f *StaticFetcher) Fetch(ctx context.Context, rawURL string) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, fmt.Errorf("static fetch aborted: %w", err)
	}

	c := f.base.Clone()

	var (
		once     sync.Once
		page     Page
		fetchErr error
	)
	c.OnResponse(func(r *colly.Response) {
		once.Do(func() {
			page = Page{
				URL:      rawURL,
				FinalURL: r.Request.URL.String(),
				HTML:     string(r.Body),
			}
		})
	})
	c.OnError(func(_ *colly.Response, err error) {
		once.Do(func() {
			fetchErr = err
		})
	})

	metrics.TotalFetches.Inc()
	if err := c.Visit(rawURL); err != nil {
		metrics.TotalFetchErrors.Inc()
		return Page{}, fmt.Errorf("static fetch %s: %w", rawURL, err)
	}
	c.Wait()

	if fetchErr != nil {
		metrics.TotalFetchErrors.Inc()
		return Page{}, fmt.Errorf("static fetch %s: %w", rawURL, fetchErr)
	}
	if page.HTML == "" {
		metrics.TotalFetchErrors.Inc()
		return Page{}, fmt.Errorf("static fetch %s: empty response", rawURL)
	}
	return page, nil
}

// Close satisfies Fetcher; the static path holds no session state.
func (f *StaticFetcher) Close(context.Context) error {
	return nil
}
