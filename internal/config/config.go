// Package config loads the optional configuration file for the lisk CLI.
// None of its fields change the interpreter's language semantics; they
// only parameterise the CLI/REPL shell around it.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".lisk.yaml"

// Config holds the CLI's operational defaults.
type Config struct {
	// StdlibPath is the source file loaded silently before the REPL
	// starts. Defaults to "stdlib.scm" in the working directory.
	StdlibPath string `yaml:"stdlib_path"`
	// Prompt is the REPL's prompt string.
	Prompt string `yaml:"prompt"`
	// LogLevel is "info" or "debug", controlling the verbosity of
	// internal/logging's output.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		StdlibPath: "stdlib.scm",
		Prompt:     "]=> ",
		LogLevel:   "info",
	}
}

// Load looks for .lisk.yaml in the working directory, then in $HOME.
// Its absence is not an error: Load falls back to Default(). A malformed
// file that does exist is an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := findConfigFile()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	fillDefaults(cfg)

	return cfg, nil
}

func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	candidate := filepath.Join(home, configFileName)
	if _, err := os.Stat(candidate); err != nil {
		return "", err
	}

	return candidate, nil
}

func fillDefaults(cfg *Config) {
	defaults := Default()
	if cfg.StdlibPath == "" {
		cfg.StdlibPath = defaults.StdlibPath
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}
