// Package config loads engine tuning configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tavlit/mekomit/search"
)

// Config holds the tunable word lists used by the search engine.
// Score weights are fixed and not configurable.
type Config struct {
	// StopKeywords are settlement-derived keywords excluded from sibling
	// matching because they collide with common Hebrew words.
	StopKeywords []string `yaml:"stop_keywords"`

	// PrefixWords are locality prefixes that force region expansion when
	// a query starts with one of them.
	PrefixWords []string `yaml:"prefix_words"`
}

// Default returns a Config populated with the built-in word lists.
func Default() *Config {
	return &Config{
		StopKeywords: append([]string(nil), search.DefaultStopKeywords...),
		PrefixWords:  append([]string(nil), search.DefaultPrefixWords...),
	}
}

// Load reads a Config from a YAML file. A missing file is not an error:
// the defaults are returned. Empty fields fall back to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(cfg.StopKeywords) == 0 {
		cfg.StopKeywords = append([]string(nil), search.DefaultStopKeywords...)
	}
	if len(cfg.PrefixWords) == 0 {
		cfg.PrefixWords = append([]string(nil), search.DefaultPrefixWords...)
	}

	return &cfg, nil
}
