// Package config loads the optional .bunnysync file from the working
// directory. Values from the file override flags and environment, matching
// the precedence users of the config file expect.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// FileName is looked up in the current working directory only.
const FileName = ".bunnysync"

type Config struct {
	APIKey  string   `mapstructure:"api_key"`
	Region  string   `mapstructure:"region"`
	Exclude []string `mapstructure:"exclude"`
}

// Load reads FileName if it exists. A missing file yields an empty config;
// a malformed file is an error. When the file supplies an exclude list the
// file itself is appended to it, since it likely holds the API key.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(FileName)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}

	if len(cfg.Exclude) > 0 {
		cfg.Exclude = append(cfg.Exclude, FileName)
	}

	return &cfg, nil
}

// Apply overlays the file config onto the given values and returns the
// effective settings.
func (c *Config) Apply(apiKey, region string, exclude []string) (string, string, []string) {
	if c.APIKey != "" {
		apiKey = c.APIKey
	}
	if c.Region != "" {
		region = c.Region
	}
	if len(c.Exclude) > 0 {
		exclude = c.Exclude
	}
	return apiKey, region, exclude
}
