// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package driver

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level pendrun.yaml configuration.
type Config struct {
	// Log configures the structured logger.
	Log LogConfig `yaml:"log,omitempty"`

	// Queue lists the programs to run, in order, when none are named on the
	// command line.
	Queue []string `yaml:"queue,omitempty"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is the minimum level to emit: debug, info, warn or error.
	// Defaults to info.
	Level string `yaml:"level,omitempty"`

	// File, when set, duplicates log records into the named file as JSON.
	File string `yaml:"file,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and parses a pendrun.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses pendrun.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if _, err := c.Log.slogLevel(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for i, name := range c.Queue {
		if name == "" {
			return fmt.Errorf("%s: queue[%d]: program name is empty", path, i)
		}
	}
	return nil
}

// SlogLevel maps the configured level onto slog's scale. The empty level is
// info. Validation has already rejected unknown names by the time a Config is
// handed out, so the mapping cannot fail here.
func (l LogConfig) SlogLevel() slog.Level {
	level, err := l.slogLevel()
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func (l LogConfig) slogLevel() (slog.Level, error) {
	switch l.Level {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level: unknown level %q", l.Level)
	}
}
