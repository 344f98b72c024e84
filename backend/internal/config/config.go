package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/ps-vitor/setam-sys/backend/internal/domain"
)

// DefaultDir is where LoadConfig looks for app.yaml and scraping.yaml.
const DefaultDir = "configs"

type Config struct {
	App      AppConfig      `yaml:"app"`
	Scraping ScrapingConfig `yaml:"scraping"`
}

type AppConfig struct {
	Name      string `yaml:"name"`
	Env       string `yaml:"env"`
	Debug     bool   `yaml:"debug"`
	Port      int    `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type ScrapingConfig struct {
	Setam SetamConfig `yaml:"setam"`
}

// SetamConfig holds the structural locators for setam.net.ua pages.
type SetamConfig struct {
	Selectors    SelectorConfig      `yaml:"selectors"`
	DateRows     DateRowConfig       `yaml:"date_rows"`
	PaymentRow   PaymentRowConfig    `yaml:"payment_row"`
	Labels       LabelConfig         `yaml:"labels"`
	Placeholders domain.Placeholders `yaml:"placeholders"`
}

type SelectorConfig struct {
	TabContainer  string `yaml:"tab_container"`
	ArticleLink   string `yaml:"article_link"`
	ItemPanel     string `yaml:"item_panel"`
	DateRow       string `yaml:"date_row"`
	StartPriceRow string `yaml:"start_price_row"`
	PaymentRow    string `yaml:"payment_row"`
	FeatureBlock  string `yaml:"feature_block"`
	Paragraph     string `yaml:"paragraph"`
}

// DateRowConfig lists 1-based positions of date rows that never become columns.
type DateRowConfig struct {
	ExcludePositions []int `yaml:"exclude_positions"`
}

// PaymentRowConfig picks the payment row holding the publicity date.
// Position 0 means the last one.
type PaymentRowConfig struct {
	Position int `yaml:"position"`
}

type LabelConfig struct {
	Source      string `yaml:"source"`
	Description string `yaml:"description"`
}

// Default returns the configuration matching the current setam.net.ua layout.
func Default() Config {
	return Config{
		App: AppConfig{
			Name:      "setam-sys",
			Env:       "development",
			Port:      8080,
			LogLevel:  "info",
			LogFormat: "text",
		},
		Scraping: ScrapingConfig{
			Setam: DefaultSetam(),
		},
	}
}

func DefaultSetam() SetamConfig {
	return SetamConfig{
		Selectors: SelectorConfig{
			TabContainer:  "div[class='tab-content']",
			ArticleLink:   "a[href]",
			ItemPanel:     "div[class='panel-body']",
			DateRow:       "div[class='date-end-row']",
			StartPriceRow: "div[class='start-price-row']",
			PaymentRow:    "div[class='payment-row']",
			FeatureBlock:  "div#Feature-lot",
			Paragraph:     "p",
		},
		DateRows: DateRowConfig{
			ExcludePositions: []int{3},
		},
		Labels: LabelConfig{
			Source:      "Ссылка на страницу",
			Description: "Текст",
		},
		Placeholders: domain.DefaultPlaceholders(),
	}
}

// LoadConfig reads <dir>/app.yaml and <dir>/scraping.yaml over the defaults.
// Missing files are not an error. APP_PORT and LOG_LEVEL override the files.
func LoadConfig(dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultDir
	}
	cfg := Default()

	if err := readYAML(filepath.Join(dir, "app.yaml"), &cfg); err != nil {
		return nil, err
	}
	if err := readYAML(filepath.Join(dir, "scraping.yaml"), &cfg.Scraping); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if raw := strings.TrimSpace(os.Getenv("APP_PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("APP_PORT: %w", err)
		}
		c.App.Port = port
	}
	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		c.App.LogLevel = level
	}
	return nil
}

// Validate rejects layouts that could not produce a fixed-width record.
func (c Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app.port must be in 1..65535 (got %d)", c.App.Port)
	}
	switch c.App.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("app.log_format must be text or json (got %q)", c.App.LogFormat)
	}
	return c.Scraping.Setam.Validate()
}

func (s SetamConfig) Validate() error {
	selectors := map[string]string{
		"tab_container":   s.Selectors.TabContainer,
		"article_link":    s.Selectors.ArticleLink,
		"item_panel":      s.Selectors.ItemPanel,
		"date_row":        s.Selectors.DateRow,
		"start_price_row": s.Selectors.StartPriceRow,
		"payment_row":     s.Selectors.PaymentRow,
		"feature_block":   s.Selectors.FeatureBlock,
		"paragraph":       s.Selectors.Paragraph,
	}
	for name, sel := range selectors {
		if strings.TrimSpace(sel) == "" {
			return fmt.Errorf("setam.selectors.%s must be set", name)
		}
	}
	for _, pos := range s.DateRows.ExcludePositions {
		if pos <= 0 {
			return fmt.Errorf("setam.date_rows.exclude_positions must be >= 1 (got %d)", pos)
		}
	}
	if s.PaymentRow.Position < 0 {
		return fmt.Errorf("setam.payment_row.position must be >= 0 (got %d)", s.PaymentRow.Position)
	}
	if s.Labels.Source == "" || s.Labels.Description == "" {
		return errors.New("setam.labels.source and setam.labels.description must be set")
	}
	p := s.Placeholders
	if p.Filler == "" || p.Number == "" || p.City == "" || p.VAT == "" || p.Currency == "" {
		return errors.New("setam.placeholders must all be set")
	}
	return nil
}
