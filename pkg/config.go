package booleval

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the front end settings
type Config struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	Color       bool   `toml:"color" yaml:"color"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	ShowTokens  bool   `toml:"show_tokens" yaml:"show_tokens"`
	ShowTree    bool   `toml:"show_tree" yaml:"show_tree"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:   ">>> ",
		Color:    true,
		LogLevel: "warn",
	}
}

// LoadConfig reads a .toml, .yaml or .yml file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	return cfg, nil
}
