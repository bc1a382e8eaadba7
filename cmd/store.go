package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/city58/jobharvest/internal/crawl"
	"github.com/city58/jobharvest/internal/logging"
	"github.com/city58/jobharvest/internal/sink"
)

func openStore() (*sink.Store, error) {
	cfg, err := crawl.FromViper(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return sink.NewStore(cfg.OutputXLSX, cfg.OutputJSON, logging.L), nil
}

func newWipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wipe",
		Short: "Empty the store, keeping the header row.",
		RunE: func(*cobra.Command, []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			if err := store.Wipe(); err != nil {
				return fmt.Errorf("wipe store: %w", err)
			}
			fmt.Println("store wiped")
			return nil
		},
	}
}

func newRemoveCompanyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-company <企业名称>",
		Short: "Delete every stored record of one employer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			removed, err := store.RemoveCompany(args[0])
			if err != nil {
				return fmt.Errorf("remove company: %w", err)
			}
			fmt.Printf("removed %d record(s)\n", removed)
			return nil
		},
	}
}
