// ./backend/cmd/setam/main.go

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ps-vitor/setam-sys/backend/internal/api/models"
	"github.com/ps-vitor/setam-sys/backend/internal/bootstrap"
	"github.com/ps-vitor/setam-sys/backend/internal/config"
)

func main() {
	var configDir, logLevel string

	rootCmd := &cobra.Command{
		Use:   "setam",
		Short: "Prints the current setam.net.ua land auctions as JSON without writing a workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap.Load(configDir, logLevel)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			result, err := bootstrap.NewCollector(cfg, log).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("error running scraper: %w", err)
			}

			jsonData, err := json.MarshalIndent(models.NewScrapeResponse(result), "", "  ")
			if err != nil {
				return fmt.Errorf("error marshaling to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
	rootCmd.Flags().StringVar(&configDir, "config-dir", "", "Directory holding app.yaml and scraping.yaml (default $CONFIG_DIR, then "+config.DefaultDir+")")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level for stderr output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
