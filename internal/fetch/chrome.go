package fetch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/city58/jobharvest/internal/metrics"
)

// ChromeOptions configure the shared browser session.
type ChromeOptions struct {
	Headless            bool
	UserAgent           string
	Timeout             time.Duration
	ChallengeMaxRetries int
	// ManualFallback blocks for operator input when automatic challenge
	// clearing fails, instead of giving up on the page.
	ManualFallback bool
}

// ChromeFetcher renders pages in one long-lived headless-Chrome session.
// Keeping a single browser preserves cookies across fetches, which is what
// lets a cleared verification challenge stay cleared.
type ChromeFetcher struct {
	allocatorCancel context.CancelFunc
	browserCtx      context.Context
	browserCancel   context.CancelFunc
	opts            ChromeOptions
	logger          *zap.Logger
	stdin           io.Reader
}

// NewChromeFetcher starts the browser session. A failed warmup is fatal for
// the crawl and wraps ErrSessionUnavailable.
func NewChromeFetcher(opts ChromeOptions, logger *zap.Logger) (*ChromeFetcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.ChallengeMaxRetries <= 0 {
		opts.ChallengeMaxRetries = 3
	}

	allocOpts := chromedp.DefaultExecAllocatorOptions[:]
	allocOpts = append(allocOpts,
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(opts.UserAgent),
	)
	allocatorCtx, allocatorCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocatorCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		allocatorCancel()
		browserCancel()
		return nil, fmt.Errorf("chromedp warmup: %w: %w", ErrSessionUnavailable, err)
	}

	return &ChromeFetcher{
		allocatorCancel: allocatorCancel,
		browserCtx:      browserCtx,
		browserCancel:   browserCancel,
		opts:            opts,
		logger:          logger,
		stdin:           os.Stdin,
	}, nil
}

// Close tears down the browser and allocator contexts.
func (f *ChromeFetcher) Close(_ context.Context) error {
	if f == nil {
		return nil
	}
	f.browserCancel()
	f.allocatorCancel()
	return nil
}

// Fetch renders rawURL in a fresh tab of the shared session. A verification
// interstitial is cleared in place before the page is returned.
func (f *ChromeFetcher) Fetch(ctx context.Context, rawURL string) (Page, error) {
	tabCtx, cancelTab := chromedp.NewContext(f.browserCtx)
	defer cancelTab()

	taskCtx, cancelTask := context.WithTimeout(tabCtx, f.opts.Timeout)
	defer cancelTask()

	stopForward := forwardCancel(ctx, cancelTask)
	defer stopForward()

	meta := newResponseMeta()
	f.recordResponse(tabCtx, meta)

	metrics.TotalFetches.Inc()
	html, err := f.navigate(taskCtx, rawURL)
	if err != nil {
		metrics.TotalFetchErrors.Inc()
		return Page{}, fmt.Errorf("chromedp run: %w", err)
	}

	if IsChallenge(html) {
		metrics.TotalChallenges.Inc()
		f.logger.Warn("verification challenge detected", zap.String("url", rawURL))
		html, err = f.clearChallenge(tabCtx, rawURL)
		if err != nil {
			metrics.TotalFetchErrors.Inc()
			return Page{}, err
		}
	}

	return Page{
		URL:      rawURL,
		FinalURL: meta.finalURL(rawURL),
		HTML:     html,
	}, nil
}

func (f *ChromeFetcher) navigate(ctx context.Context, rawURL string) (string, error) {
	var html string
	tasks := chromedp.Tasks{
		network.Enable(),
		emulation.SetUserAgentOverride(f.opts.UserAgent),
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return "", err
	}
	return html, nil
}

// clearChallenge tries the known confirm buttons, then a reload, re-reading
// the DOM after each attempt. When everything fails and manual fallback is
// on, it parks until the operator solves the challenge in the visible
// browser window.
func (f *ChromeFetcher) clearChallenge(tabCtx context.Context, rawURL string) (string, error) {
	for attempt := 1; attempt <= f.opts.ChallengeMaxRetries; attempt++ {
		f.logger.Info("attempting challenge clear",
			zap.Int("attempt", attempt), zap.String("url", rawURL))

		if !f.clickAnyButton(tabCtx) {
			reloadCtx, cancel := context.WithTimeout(tabCtx, f.opts.Timeout)
			_ = chromedp.Run(reloadCtx, chromedp.Reload())
			cancel()
		}

		html, err := f.snapshot(tabCtx)
		if err != nil {
			return "", fmt.Errorf("challenge snapshot: %w", err)
		}
		if !IsChallenge(html) {
			f.logger.Info("challenge cleared", zap.Int("attempt", attempt))
			return html, nil
		}
	}

	if !f.opts.ManualFallback {
		return "", fmt.Errorf("%w: %s", ErrChallengeUnresolved, rawURL)
	}

	f.logger.Warn("automatic clearing failed; solve the challenge in the browser window and press Enter",
		zap.String("url", rawURL))
	f.waitForOperator()

	html, err := f.snapshot(tabCtx)
	if err != nil {
		return "", fmt.Errorf("challenge snapshot: %w", err)
	}
	if IsChallenge(html) {
		return "", fmt.Errorf("%w: %s", ErrChallengeUnresolved, rawURL)
	}
	return html, nil
}

func (f *ChromeFetcher) clickAnyButton(tabCtx context.Context) bool {
	for _, path := range challengeButtonPaths {
		clickCtx, cancel := context.WithTimeout(tabCtx, 2*time.Second)
		err := chromedp.Run(clickCtx, chromedp.Tasks{
			chromedp.Click(path, chromedp.BySearch, chromedp.NodeVisible),
			chromedp.Sleep(2 * time.Second),
		})
		cancel()
		if err == nil {
			return true
		}
	}
	return false
}

func (f *ChromeFetcher) snapshot(tabCtx context.Context) (string, error) {
	snapCtx, cancel := context.WithTimeout(tabCtx, f.opts.Timeout)
	defer cancel()
	var html string
	if err := chromedp.Run(snapCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

func (f *ChromeFetcher) waitForOperator() {
	in := f.stdin
	if in == nil {
		in = os.Stdin
	}
	scanner := bufio.NewScanner(in)
	scanner.Scan()
}

type responseMeta struct {
	once sync.Once
	url  string
}

func newResponseMeta() *responseMeta {
	return &responseMeta{}
}

func (m *responseMeta) finalURL(raw string) string {
	if m.url == "" {
		return raw
	}
	return m.url
}

func (f *ChromeFetcher) recordResponse(tabCtx context.Context, meta *responseMeta) {
	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		resp, ok := ev.(*network.EventResponseReceived)
		if !ok || resp.Type != network.ResourceTypeDocument {
			return
		}
		meta.once.Do(func() {
			meta.url = resp.Response.URL
		})
	})
}

func forwardCancel(parent context.Context, cancel context.CancelFunc) func() {
	if parent == nil {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-parent.Done():
			cancel()
		case <-done:
		}
	}()
	return func() { close(done) }
}
