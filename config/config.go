package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/synapse/market"
)

// Config is the complete dashboard configuration.
type Config struct {
	Account   AccountConfig     `json:"account" yaml:"account"`
	Journal   JournalConfig     `json:"journal" yaml:"journal"`
	Feed      FeedConfig        `json:"feed" yaml:"feed"`
	News      NewsConfig        `json:"news" yaml:"news"`
	Positions []market.Position `json:"positions,omitempty" yaml:"positions,omitempty"`
}

// AccountConfig contains account display parameters.
type AccountConfig struct {
	Currency string  `json:"currency" yaml:"currency"`
	Balance  float64 `json:"balance" yaml:"balance"`
}

// JournalConfig selects and locates the journal backend.
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "sqlite" or "memory"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// FeedConfig drives the simulated price source for the monitor loop.
type FeedConfig struct {
	Interval string  `json:"interval" yaml:"interval"` // e.g. "5s", "500ms"
	Step     float64 `json:"step" yaml:"step"`
}

// ParseInterval converts the interval string to a time.Duration.
func (f FeedConfig) ParseInterval() (time.Duration, error) {
	if f.Interval == "" {
		return 0, nil
	}
	return time.ParseDuration(f.Interval)
}

// NewsConfig points at the news-sentiment service. An empty BaseURL disables
// the news widget.
type NewsConfig struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Count   int    `json:"count,omitempty" yaml:"count,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (format by extension, JSON unless
// .yaml/.yml).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Journal.Type != "sqlite" && c.Journal.Type != "memory" {
		return fmt.Errorf("journal.type must be 'sqlite' or 'memory'")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path required for sqlite type")
	}
	interval, err := c.Feed.ParseInterval()
	if err != nil {
		return fmt.Errorf("feed.interval: %w", err)
	}
	if interval <= 0 {
		return fmt.Errorf("feed.interval must be a positive duration")
	}
	if c.Feed.Step <= 0 {
		return fmt.Errorf("feed.step must be positive")
	}
	if c.News.BaseURL != "" && c.News.Count <= 0 {
		return fmt.Errorf("news.count must be positive when news.base_url is set")
	}
	for i, p := range c.Positions {
		if market.NormalizeSymbol(p.Symbol) == "" {
			return fmt.Errorf("positions[%d]: symbol is required", i)
		}
		if p.Volume <= 0 {
			return fmt.Errorf("positions[%d]: volume must be positive", i)
		}
		if p.OpenPrice <= 0 || p.CurrentPrice <= 0 {
			return fmt.Errorf("positions[%d]: prices must be positive", i)
		}
		if _, err := market.ParseSide(string(p.Side)); err != nil {
			return fmt.Errorf("positions[%d]: %w", i, err)
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency: "USD",
			Balance:  10000,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./journal.db",
		},
		Feed: FeedConfig{
			Interval: "5s",
			Step:     0.001,
		},
		News: NewsConfig{
			Count: 1,
		},
		Positions: []market.Position{
			{Symbol: "EURUSD", Volume: 0.1, OpenPrice: 1.0850, CurrentPrice: 1.0865, Side: market.Buy},
			{Symbol: "GBPUSD", Volume: 0.05, OpenPrice: 1.2650, CurrentPrice: 1.2640, Side: market.Sell},
		},
	}
}
