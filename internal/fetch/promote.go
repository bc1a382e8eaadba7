package fetch

import (
	"context"

	"go.uber.org/zap"
)

// PromotingFetcher probes with the static fetcher and promotes to the
// browser session when the probe fails or the detector flags the result.
type PromotingFetcher struct {
	static   Fetcher
	session  Fetcher
	detector *Detector
	logger   *zap.Logger
}

// NewPromotingFetcher wires the static probe in front of the session fetcher.
func NewPromotingFetcher(static, session Fetcher, detector *Detector, logger *zap.Logger) *PromotingFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PromotingFetcher{static: static, session: session, detector: detector, logger: logger}
}

// Fetch returns the static result when it passes the detector, the rendered
// result otherwise.
func (f *PromotingFetcher) Fetch(ctx context.Context, rawURL string) (Page, error) {
	page, err := f.static.Fetch(ctx, rawURL)
	if err == nil && (f.detector == nil || !f.detector.NeedsSession(page.HTML)) {
		return page, nil
	}
	if err != nil {
		f.logger.Debug("static fetch failed, promoting", zap.String("url", rawURL), zap.Error(err))
	}
	return f.session.Fetch(ctx, rawURL)
}

// Close shuts the session fetcher down.
func (f *PromotingFetcher) Close(ctx context.Context) error {
	return f.session.Close(ctx)
}
