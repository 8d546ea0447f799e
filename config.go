package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the shell's optional on-disk configuration. Every field is
// a pointer so an absent key in the YAML file leaves the compiled-in
// default untouched.
type Config struct {
	HistorySize      *int    `yaml:"history_size,omitempty"`
	NoColor          *bool   `yaml:"no_color,omitempty"`
	PromptSymbolUser *string `yaml:"prompt_symbol_user,omitempty"`
	PromptSymbolRoot *string `yaml:"prompt_symbol_root,omitempty"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "goshell", "config.yaml"), nil
}

// loadConfig reads the optional config file. A missing file is not an
// error: it returns a zero-value Config and the shell runs on defaults.
// A malformed file is reported to stderr and defaults are used anyway,
// since a broken config must never keep the shell from starting.
func loadConfig() *Config {
	path, err := configPath()
	if err != nil {
		return &Config{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "[!] Warning: could not read %s: %v\n", path, err)
		}
		return &Config{}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "[!] Warning: could not parse %s: %v\n", path, err)
		return &Config{}
	}

	return &cfg
}

func (c *Config) historySize(fallback int) int {
	if c.HistorySize != nil {
		return *c.HistorySize
	}
	return fallback
}

func (c *Config) noColor() bool {
	return c.NoColor != nil && *c.NoColor
}

func (c *Config) userSymbol(fallback string) string {
	if c.PromptSymbolUser != nil {
		return *c.PromptSymbolUser
	}
	return fallback
}

func (c *Config) rootSymbol(fallback string) string {
	if c.PromptSymbolRoot != nil {
		return *c.PromptSymbolRoot
	}
	return fallback
}
