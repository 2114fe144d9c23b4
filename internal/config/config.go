// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

// Package config holds the configuration of the cstree exerciser tool.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all settings of a cstree run.
type Config struct {
	// NamesFile is a file with one name URI per line. If empty, Count
	// pseudo-random names with at most Depth components are generated.
	NamesFile string `mapstructure:"names_file"`
	Count     int    `mapstructure:"count"`
	Depth     int    `mapstructure:"depth"`

	// Probes is the number of exact and LPM probes to run.
	Probes int `mapstructure:"probes"`

	// Seed for the name and probe generator, runs are reproducible.
	Seed int64 `mapstructure:"seed"`

	// Rightmost selects the first-step direction of the first-match probes.
	Rightmost bool `mapstructure:"rightmost"`

	// Dump selects the final output: "", "tree" or "json".
	Dump string `mapstructure:"dump"`

	LogLevel string `mapstructure:"log_level"`
}

// Load reads the configuration from defaults, an optional config file and
// CSTREE_* environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("CSTREE")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("names_file", "")
	v.SetDefault("count", 10_000)
	v.SetDefault("depth", 6)
	v.SetDefault("probes", 100_000)
	v.SetDefault("seed", 42)
	v.SetDefault("rightmost", false)
	v.SetDefault("dump", "")
	v.SetDefault("log_level", "info")
}

// Validate checks the configuration for nonsensical values.
func (c *Config) Validate() error {
	if c.NamesFile == "" && c.Count <= 0 {
		return fmt.Errorf("count must be positive when no names file is given")
	}
	if c.Depth <= 0 {
		return fmt.Errorf("depth must be positive")
	}
	if c.Probes < 0 {
		return fmt.Errorf("probes must not be negative")
	}

	switch c.Dump {
	case "", "tree", "json":
	default:
		return fmt.Errorf("unknown dump format %q", c.Dump)
	}

	return nil
}
