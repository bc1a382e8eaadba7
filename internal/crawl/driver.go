package crawl

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/city58/jobharvest/internal/extract"
	"github.com/city58/jobharvest/internal/fetch"
	"github.com/city58/jobharvest/internal/listing"
	"github.com/city58/jobharvest/internal/record"
	"github.com/city58/jobharvest/internal/sink"
)

// Store is the persistence surface the driver needs.
type Store interface {
	Append(rec *record.JobRecord) (bool, error)
}

var _ Store = (*sink.Store)(nil)

// Summary totals one crawl run.
type Summary struct {
	Pages     int
	Persisted int
	Skipped   int
	Failed    int
}

// Driver walks the configured cities sequentially. One fetcher, one limiter,
// one store; a broken item never stops the run, a broken browser session
// does.
type Driver struct {
	cfg       Config
	fetcher   fetch.Fetcher
	assembler *record.Assembler
	store     Store
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// NewDriver wires the pipeline. The assembler shares the driver's fetcher and
// rate limiter, so employer-page fetches are paced like every other request.
func NewDriver(cfg Config, fetcher fetch.Fetcher, store Store, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	var limiter *rate.Limiter
	if cfg.FetchQPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.FetchQPS), 1)
	}
	paced := &pacedHTMLFetcher{fetcher: fetcher, limiter: limiter}
	return &Driver{
		cfg:       cfg,
		fetcher:   fetcher,
		assembler: record.NewAssembler(paced, cfg.ImageHost, logger),
		store:     store,
		limiter:   limiter,
		logger:    logger,
	}
}

// Run crawls every configured city up to MaxPages listing pages each.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	runID := uuid.NewString()
	logger := d.logger.With(zap.String("run_id", runID))
	logger.Info("crawl starting",
		zap.Int("cities", len(d.cfg.Cities)),
		zap.Int("max_pages", d.cfg.MaxPages))

	var sum Summary
	for _, city := range d.cfg.Cities {
		if err := d.crawlCity(ctx, city, logger, &sum); err != nil {
			logger.Error("crawl aborted", zap.String("city", city.Name), zap.Error(err))
			return sum, err
		}
	}

	logger.Info("crawl finished",
		zap.Int("pages", sum.Pages),
		zap.Int("persisted", sum.Persisted),
		zap.Int("skipped", sum.Skipped),
		zap.Int("failed", sum.Failed))
	return sum, nil
}

func (d *Driver) crawlCity(ctx context.Context, city CitySeed, logger *zap.Logger, sum *Summary) error {
	logger = logger.With(zap.String("city", city.Name))
	logger.Info("city starting", zap.String("url", city.URL))

	pageURL := city.URL
	for page := 1; page <= d.cfg.MaxPages; page++ {
		doc, err := d.fetchDocument(ctx, pageURL)
		if err != nil {
			if fatal(ctx, err) {
				return fmt.Errorf("listing page %d: %w", page, err)
			}
			logger.Warn("listing fetch failed, city abandoned",
				zap.Int("page", page), zap.Error(err))
			sum.Failed++
			return nil
		}
		sum.Pages++

		base, _ := url.Parse(pageURL)
		links := listing.DetailLinks(doc, base)
		if len(links) == 0 {
			logger.Info("no detail links, city done", zap.Int("page", page))
			return nil
		}
		logger.Info("listing page walked", zap.Int("page", page), zap.Int("links", len(links)))

		for _, link := range links {
			if err := d.processJob(ctx, city, link, logger, sum); err != nil {
				if fatal(ctx, err) {
					return fmt.Errorf("job %s: %w", link, err)
				}
				logger.Warn("job failed", zap.String("url", link), zap.Error(err))
				sum.Failed++
			}
		}

		pageURL = listing.NextPage(doc, page+1, city.URL)
	}
	return nil
}

func (d *Driver) processJob(ctx context.Context, city CitySeed, link string, logger *zap.Logger, sum *Summary) error {
	doc, err := d.fetchDocument(ctx, link)
	if err != nil {
		return err
	}

	rec, err := d.assembler.Assemble(ctx, doc)
	if err != nil {
		return err
	}
	if rec == nil {
		sum.Skipped++
		return nil
	}
	rec.SourceCity = city.Name

	stored, err := d.store.Append(rec)
	if err != nil {
		return fmt.Errorf("persist record: %w", err)
	}
	if stored {
		sum.Persisted++
		logger.Info("record stored",
			zap.String("company", rec.CompanyName), zap.String("title", rec.Title))
	} else {
		sum.Skipped++
	}
	return nil
}

func (d *Driver) fetchDocument(ctx context.Context, rawURL string) (*extract.Document, error) {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pacing: %w", err)
		}
	}
	page, err := d.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return extract.NewDocument(page.HTML)
}

// fatal reports errors the run cannot continue past: a dead browser session
// or a cancelled context.
func fatal(ctx context.Context, err error) bool {
	return errors.Is(err, fetch.ErrSessionUnavailable) || ctx.Err() != nil
}

// pacedHTMLFetcher adapts the driver's fetcher for the assembler's
// employer-page lookups, keeping them under the same rate limit.
type pacedHTMLFetcher struct {
	fetcher fetch.Fetcher
	limiter *rate.Limiter
}

func (p *pacedHTMLFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("pacing: %w", err)
		}
	}
	page, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return page.HTML, nil
}
