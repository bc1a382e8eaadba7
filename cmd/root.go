// Package cmd wires the command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/city58/jobharvest/internal/logging"
	"github.com/city58/jobharvest/pkg/config"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobharvest",
		Short: "Classified-job-site crawler with an xlsx/JSON store.",
		Long: `jobharvest walks city job listings, renders each posting and its
employer profile, normalizes the captured fields, and appends the records to
an xlsx workbook with a JSON mirror.`,
	}

	cobra.OnInitialize(config.InitConfig)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	cmd.AddCommand(newCrawlCmd(), newWipeCmd(), newRemoveCompanyCmd())
	return cmd
}

// Execute is the main entry point.
func Execute() {
	logging.InitLogger()

	if err := newRootCmd().Execute(); err != nil {
		logging.L.Fatal("Command execution failed", zap.Error(err))
	}
}
