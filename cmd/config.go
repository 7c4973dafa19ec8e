package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/dashboard"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the dashboard settings.
type Config struct {
	StorageDir string `yaml:"storage_dir" env:"DASHBOARD_STORAGE" env-description:"Directory holding the persisted dashboard data"`
	Currency   string `yaml:"currency" env:"DASHBOARD_CURRENCY" env-default:"INR" env-description:"Currency code for amounts"`
	History    int    `yaml:"history" env:"DASHBOARD_HISTORY" env-default:"5" env-description:"Number of transactions shown in the history list"`
}

// LoadConfig reads the configuration from the YAML file named by
// DASHBOARD_CONFIG when set, otherwise from environment variables, with
// working defaults for everything. The storage directory defaults to
// ~/.dashboard.
func LoadConfig() (Config, error) {
	var cfg Config
	if path := os.Getenv("DASHBOARD_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("could not read config %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("could not read environment: %w", err)
	}

	if cfg.StorageDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("could not resolve home directory: %w", err)
		}
		cfg.StorageDir = filepath.Join(home, ".dashboard")
	}
	if cfg.Currency == "" {
		cfg.Currency = dashboard.DefaultCurrency
	}
	if cfg.History <= 0 {
		cfg.History = dashboard.DefaultHistoryLimit
	}
	return cfg, nil
}
