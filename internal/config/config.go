package config

import (
	"fmt"
	"os"

	"github.com/a8m/envsubst"
	"github.com/goccy/go-yaml"
)

type Config struct {
	Options Options `yaml:"options"`
}

// Options are the adapter's own settings. Plugin arguments never reach them:
// the host owns the command line.
type Options struct {
	LogLevel  string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"omitempty,oneof=auto text json"`
	LogFile   string `yaml:"log_file" validate:"omitempty,filepath"`
	Encoding  string `yaml:"encoding" validate:"omitempty,oneof=proto json yaml"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Options.LogLevel == "" {
		c.Options.LogLevel = "warn"
	}
	if c.Options.LogFormat == "" {
		c.Options.LogFormat = "auto"
	}
	if c.Options.Encoding == "" {
		c.Options.Encoding = "proto"
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	data, err = envsubst.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("expanding env vars: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}
