// backend/cmd/scraping/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ps-vitor/setam-sys/backend/internal/bootstrap"
	"github.com/ps-vitor/setam-sys/backend/internal/config"
	"github.com/ps-vitor/setam-sys/backend/internal/repositories"
	collector "github.com/ps-vitor/setam-sys/backend/internal/scraping/collectors/setam"
	"github.com/ps-vitor/setam-sys/backend/internal/services"
)

var (
	configDir string
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "scraping",
	Short: "Scrapes setam.net.ua land auctions into " + bootstrap.OutputPath,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&configDir, "config-dir", "", "Directory holding app.yaml and scraping.yaml (default $CONFIG_DIR, then "+config.DefaultDir+")")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(configDir, logLevel)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repo := repositories.NewXLSXRecordRepository(bootstrap.OutputPath)
	svc := services.NewScraperService(bootstrap.NewCollector(cfg, log), repo, log)

	log.Info("scraping", "url", collector.StartURL)
	result, err := svc.ScrapeAndStore(cmd.Context())
	if errors.Is(err, collector.ErrSiteUnreachable) {
		return fmt.Errorf("site unreachable, nothing written: %w", err)
	}
	if err != nil {
		return err
	}

	if result.Listings == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "site reachable, no listings found")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s (%d skipped)\n",
		len(result.Records), repo.Path(), len(result.Skipped))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
