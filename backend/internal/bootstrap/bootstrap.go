// Package bootstrap builds the pieces shared by the command entry points.
package bootstrap

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ps-vitor/setam-sys/backend/internal/config"
	collector "github.com/ps-vitor/setam-sys/backend/internal/scraping/collectors/setam"
	client "github.com/ps-vitor/setam-sys/backend/internal/scrapers/setam"
	"github.com/ps-vitor/setam-sys/backend/pkg/logger"
)

// OutputPath is the workbook every run writes.
const OutputPath = "results.xlsx"

// Load reads .env when present, then the YAML config in dir. An empty dir
// falls back to CONFIG_DIR, which .env may set. A non-empty logLevel
// overrides the configured one. Logs go to stderr.
func Load(dir, logLevel string) (*config.Config, *logger.Logger, error) {
	_ = godotenv.Load()
	if dir == "" {
		dir = os.Getenv("CONFIG_DIR")
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.App.LogLevel = logLevel
	}

	log := logger.NewWithOptions("", logger.Options{
		Level:  cfg.App.LogLevel,
		JSON:   cfg.App.LogFormat == "json",
		Writer: os.Stderr,
	}).With("app", cfg.App.Name, "env", cfg.App.Env)
	return cfg, log, nil
}

// NewCollector wires the setam client into a collector.
func NewCollector(cfg *config.Config, log *logger.Logger) *collector.SetamCollector {
	return collector.NewSetamCollector(
		client.NewClient(log.With("component", "client")),
		cfg.Scraping.Setam,
		log.With("component", "collector"),
	)
}
