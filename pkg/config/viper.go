// Package config initializes the application's configuration. It uses the
// Viper library to read settings from a config file and environment
// variables, providing a unified configuration system.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/city58/jobharvest/internal/logging"
)

// InitConfig initializes configuration using Viper: defaults, search paths,
// and environment variables. Call once at startup.
func InitConfig() {
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/jobharvest/")
	viper.AddConfigPath("$HOME/.jobharvest")

	const defaultUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	viper.SetDefault("crawler.user_agent", defaultUA)
	viper.SetDefault("crawler.max_pages", 5)
	viper.SetDefault("crawler.fetch_qps", 0.5)
	viper.SetDefault("crawler.request_timeout", "30s")
	viper.SetDefault("crawler.headless", true)
	viper.SetDefault("crawler.image_host", "https://pic1.58cdn.com.cn")
	// crawler.cities entries have the form 名称=URL; unset means the built-in
	// seven-city list.
	viper.SetDefault("crawler.cities", []string{})

	viper.SetDefault("crawler.challenge.max_retries", 3)
	viper.SetDefault("crawler.challenge.manual_fallback", true)

	viper.SetDefault("detector.min_html_bytes", 2000)
	viper.SetDefault("detector.must_selectors", []string{".pos_title", ".job-title", ".job_title"})
	viper.SetDefault("detector.keywords", []string{"window.____json4fe", "data-reactroot"})

	viper.SetDefault("output.xlsx", "data/jobs.xlsx")
	viper.SetDefault("output.json", "data/jobs.json")
	viper.SetDefault("output.log_dir", "log")

	viper.SetDefault("development", false)

	viper.SetEnvPrefix("JOBHARVEST") // e.g. JOBHARVEST_CRAWLER_MAX_PAGES=10
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logging.L.Warn("Config file not found; using defaults and environment variables.")
		} else {
			logging.L.Error("Error reading config file", zap.Error(err))
		}
	} else {
		logging.L.Info("Using config file", zap.String("path", viper.ConfigFileUsed()))
	}
}
