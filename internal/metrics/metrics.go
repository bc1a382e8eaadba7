// Package metrics exposes prometheus counters for the crawl pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TotalFetches tracks the number of pages fetched, listing and detail alike.
	TotalFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobharvest_fetches_total",
		Help: "The total number of pages fetched.",
	})
	// TotalFetchErrors tracks fetches that failed and were abandoned.
	TotalFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobharvest_fetch_errors_total",
		Help: "The total number of failed page fetches.",
	})
	// TotalChallenges tracks how many times the anti-automation interstitial was seen.
	TotalChallenges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobharvest_challenges_total",
		Help: "The total number of verification interstitials encountered.",
	})
	// TotalRecordsPersisted tracks records that passed validation and were written.
	TotalRecordsPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jobharvest_records_persisted_total",
		Help: "The total number of job records appended to the store.",
	})
	// TotalRecordsSkipped tracks records dropped by validation, by reason.
	TotalRecordsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jobharvest_records_skipped_total",
		Help: "The total number of job records dropped before persistence.",
	}, []string{"reason"})
)
