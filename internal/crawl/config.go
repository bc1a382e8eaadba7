// Package crawl drives the whole pipeline: cities, listing pages, detail
// pages, employer profiles, store.
package crawl

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// CitySeed is a city name and its listing entry URL. Crawl order follows the
// configured order.
type CitySeed struct {
	Name string
	URL  string
}

// DefaultCities is the built-in crawl list.
var DefaultCities = []CitySeed{
	{Name: "北京", URL: "https://bj.58.com/hulianwangtx/"},
	{Name: "上海", URL: "https://sh.58.com/hulianwangtx/"},
	{Name: "广州", URL: "https://gz.58.com/hulianwangtx/"},
	{Name: "深圳", URL: "https://sz.58.com/hulianwangtx/"},
	{Name: "成都", URL: "https://cd.58.com/hulianwangtx/"},
	{Name: "西安", URL: "https://xa.58.com/hulianwangtx/"},
	{Name: "郑州", URL: "https://zz.58.com/hulianwangtx/"},
}

// Config carries every crawl setting after viper resolution.
type Config struct {
	Cities   []CitySeed
	MaxPages int

	UserAgent      string
	RequestTimeout time.Duration
	// FetchQPS caps the request rate across listing, detail, and employer
	// fetches.
	FetchQPS float64
	Headless bool

	ChallengeMaxRetries     int
	ManualChallengeFallback bool

	OutputXLSX string
	OutputJSON string
	LogDir     string
	ImageHost  string

	DetectorMinHTMLBytes int
	DetectorSelectors    []string
	DetectorKeywords     []string

	Development bool
}

// FromViper builds a Config from the resolved viper state. Cities are
// configured as "名称=URL" entries so the order survives.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		MaxPages:                v.GetInt("crawler.max_pages"),
		UserAgent:               v.GetString("crawler.user_agent"),
		RequestTimeout:          v.GetDuration("crawler.request_timeout"),
		FetchQPS:                v.GetFloat64("crawler.fetch_qps"),
		Headless:                v.GetBool("crawler.headless"),
		ChallengeMaxRetries:     v.GetInt("crawler.challenge.max_retries"),
		ManualChallengeFallback: v.GetBool("crawler.challenge.manual_fallback"),
		OutputXLSX:              v.GetString("output.xlsx"),
		OutputJSON:              v.GetString("output.json"),
		LogDir:                  v.GetString("output.log_dir"),
		ImageHost:               v.GetString("crawler.image_host"),
		DetectorMinHTMLBytes:    v.GetInt("detector.min_html_bytes"),
		DetectorSelectors:       v.GetStringSlice("detector.must_selectors"),
		DetectorKeywords:        v.GetStringSlice("detector.keywords"),
		Development:             v.GetBool("development"),
	}

	entries := v.GetStringSlice("crawler.cities")
	if len(entries) == 0 {
		cfg.Cities = DefaultCities
	} else {
		for _, e := range entries {
			name, seedURL, found := strings.Cut(e, "=")
			if !found {
				return Config{}, fmt.Errorf("city entry %q: want 名称=URL", e)
			}
			cfg.Cities = append(cfg.Cities, CitySeed{
				Name: strings.TrimSpace(name),
				URL:  strings.TrimSpace(seedURL),
			})
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the driver cannot run with.
func (c Config) Validate() error {
	if len(c.Cities) == 0 {
		return fmt.Errorf("no cities configured")
	}
	for _, city := range c.Cities {
		if city.Name == "" {
			return fmt.Errorf("city with empty name (url %q)", city.URL)
		}
		u, err := url.Parse(city.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("city %s: bad url %q", city.Name, city.URL)
		}
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be positive, got %d", c.MaxPages)
	}
	if c.FetchQPS < 0 {
		return fmt.Errorf("fetch_qps must not be negative, got %v", c.FetchQPS)
	}
	if c.OutputXLSX == "" || c.OutputJSON == "" {
		return fmt.Errorf("output paths must be set")
	}
	return nil
}
