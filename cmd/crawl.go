package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/city58/jobharvest/internal/crawl"
	"github.com/city58/jobharvest/internal/fetch"
	"github.com/city58/jobharvest/internal/logging"
	"github.com/city58/jobharvest/internal/sink"
)

func newCrawlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crawl",
		Short: "Crawl the configured cities and append records to the store.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := crawl.FromViper(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, logFile, err := logging.NewWithFile(cfg.LogDir, cfg.Development)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck // best-effort flush
			logger.Info("logging to file", zap.String("path", logFile))

			session, err := fetch.NewChromeFetcher(fetch.ChromeOptions{
				Headless:            cfg.Headless,
				UserAgent:           cfg.UserAgent,
				Timeout:             cfg.RequestTimeout,
				ChallengeMaxRetries: cfg.ChallengeMaxRetries,
				ManualFallback:      cfg.ManualChallengeFallback,
			}, logger)
			if err != nil {
				return fmt.Errorf("start browser session: %w", err)
			}

			static := fetch.NewStaticFetcher(cfg.UserAgent, cfg.RequestTimeout, logger)
			detector := fetch.NewDetector(cfg.DetectorMinHTMLBytes, cfg.DetectorSelectors, cfg.DetectorKeywords, logger)
			fetcher := fetch.NewPromotingFetcher(static, session, detector, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			defer fetcher.Close(ctx) //nolint:errcheck // browser teardown

			store := sink.NewStore(cfg.OutputXLSX, cfg.OutputJSON, logger)
			driver := crawl.NewDriver(cfg, fetcher, store, logger)

			sum, err := driver.Run(ctx)
			if err != nil {
				return fmt.Errorf("crawl: %w", err)
			}
			logger.Info("done",
				zap.Int("pages", sum.Pages),
				zap.Int("persisted", sum.Persisted),
				zap.Int("skipped", sum.Skipped),
				zap.Int("failed", sum.Failed))
			return nil
		},
	}
}
