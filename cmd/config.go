package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/cashbook/renderer"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvLedgerFile = "CASHBOOK_LEDGER_FILE"
	EnvCurrency   = "CASHBOOK_CURRENCY"

	DefaultConfigFile = "cashbook.yaml"
	DefaultLedgerFile = "transactions.txt"
)

// Config holds the application settings.
type Config struct {
	LedgerFile string // path of the ledger file
	Currency   string // label used to display amounts
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LedgerFile: DefaultLedgerFile,
		Currency:   renderer.DefaultCurrency,
	}
}

type yamlConfig struct {
	Cashbook struct {
		LedgerFile string `yaml:"ledger_file"`
		Currency   string `yaml:"currency"`
	} `yaml:"cashbook"`
}

// LoadConfig builds the settings from, in increasing priority: the defaults,
// the YAML file at path, and the environment (a .env file in the working
// directory is loaded first, without overriding variables already set).
//
// An empty path reads DefaultConfigFile if it exists. An explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

// loadConfig is LoadConfig without validation, to let flags override invalid values.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file := path
	if file == "" {
		file = DefaultConfigFile
	}
	b, err := os.ReadFile(file)
	switch {
	case err == nil:
		var y yamlConfig
		if err := yaml.Unmarshal(b, &y); err != nil {
			return cfg, fmt.Errorf("invalid config file %q: %w", file, err)
		}
		if y.Cashbook.LedgerFile != "" {
			cfg.LedgerFile = y.Cashbook.LedgerFile
		}
		if y.Cashbook.Currency != "" {
			cfg.Currency = y.Cashbook.Currency
		}
	case path == "" && errors.Is(err, fs.ErrNotExist):
		// no config file, defaults apply
	default:
		return cfg, fmt.Errorf("could not read config file %q: %w", file, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("could not load .env: %w", err)
	}
	if v := os.Getenv(EnvLedgerFile); v != "" {
		cfg.LedgerFile = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}

	return cfg, nil
}

// validate normalizes the currency label.
func (c *Config) validate() error {
	cur, err := renderer.ParseCurrency(c.Currency)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.Currency = cur
	return nil
}
