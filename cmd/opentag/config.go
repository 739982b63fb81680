package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/martinemde/opentag/tagparser"
	"github.com/spf13/viper"
)

// Config is the resolved configuration: flags override OPENTAG_* environment
// variables, which override the config file.
type Config struct {
	Format  string      `mapstructure:"format"`
	Hasher  string      `mapstructure:"hasher"`
	Verbose bool        `mapstructure:"verbose"`
	Debug   bool        `mapstructure:"debug"`
	Bench   BenchConfig `mapstructure:"bench"`
}

// BenchConfig holds the settings of the bench command.
type BenchConfig struct {
	Sizes       []int         `mapstructure:"sizes"`
	Hashers     []string      `mapstructure:"hashers"`
	MinDuration time.Duration `mapstructure:"min_duration"`
}

var formats = []string{"text", "json", "yaml", "toml"}

func loadConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects unknown formats and hashers.
func (c Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("invalid format %q (want one of %v)", c.Format, formats)
	}
	if _, err := tagparser.HasherByName(c.Hasher); err != nil {
		return err
	}
	for _, name := range c.Bench.Hashers {
		if name == "all" {
			continue
		}
		if _, err := tagparser.HasherByName(name); err != nil {
			return fmt.Errorf("bench: %w", err)
		}
	}
	return nil
}

// parseOptions returns the tagparser options selected by the config.
func (c Config) parseOptions() ([]tagparser.Option, error) {
	h, err := tagparser.HasherByName(c.Hasher)
	if err != nil {
		return nil, err
	}
	return []tagparser.Option{tagparser.WithHasher(h)}, nil
}

// benchHashers expands "all" into every known hasher.
func (c Config) benchHashers() []string {
	if slices.Contains(c.Bench.Hashers, "all") {
		return tagparser.Hashers()
	}
	return c.Bench.Hashers
}
