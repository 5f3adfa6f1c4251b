package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. TXA_LEDGER_PATH.
const envPrefix = "TXA"

// Config represents the application configuration
type Config struct {
	// LedgerPath is the JSON ledger file loaded before every query.
	LedgerPath string `mapstructure:"ledger_path"`
	// DefaultType is assigned to an added transaction when no type is given.
	DefaultType string `mapstructure:"default_type"`
	// StrictParsing fails the ledger load on a malformed amount or date
	// instead of keeping sentinel values.
	StrictParsing bool `mapstructure:"strict_parsing"`
	// LogLevel names the minimum level emitted on stderr.
	LogLevel string `mapstructure:"log_level"`
}

// LoadConfig loads configuration from a TOML file and environment variables.
// An empty path skips the file and resolves from defaults and environment
// only; a path that cannot be read is an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("ledger_path", "data/transactions.json")
	v.SetDefault("default_type", "debit")
	v.SetDefault("strict_parsing", false)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
