// Package config merges command-line flags, XULATE_* environment variables
// and an optional YAML config file into the settings of a run.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/OpenTraceLab/xulate/pkg/ucf"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "XULATE"

// Config holds the settings shared by all commands.
type Config struct {
	// Table is the path of a .pins or YAML table file. Empty selects the
	// built-in XuLA/XuLA2 table.
	Table string `mapstructure:"table" yaml:"table,omitempty"`

	// Direction is auto, forward or reverse.
	Direction string `mapstructure:"direction" yaml:"direction,omitempty"`

	Verbose bool `mapstructure:"verbose" yaml:"verbose,omitempty"`
}

// Load builds a Config. Precedence, highest first: flags that were set on the
// command line, environment variables, the config file at path (if any),
// flag defaults.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("table", "")
	v.SetDefault("direction", "auto")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{"table", "direction", "verbose"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", key, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if _, err := ucf.ParseDirection(c.Direction); err != nil {
		return fmt.Errorf("config: invalid direction: %w", err)
	}
	return nil
}

// ParsedDirection returns the configured direction. Call Validate first.
func (c *Config) ParsedDirection() ucf.Direction {
	d, _ := ucf.ParseDirection(c.Direction)
	return d
}
