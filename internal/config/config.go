// Package config provides configuration management for taxtrace.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the taxtrace configuration.
type Config struct {
	Taxtrace TaxtraceConfig `yaml:"taxtrace"`
}

// TaxtraceConfig contains the main taxtrace settings.
type TaxtraceConfig struct {
	// ReturnFile is the path to the YAML tax-return document.
	ReturnFile string `yaml:"return_file"`

	// Year is the tax year being computed.
	Year int `yaml:"year"`

	// Display configures terminal output.
	Display DisplayConfig `yaml:"display"`

	// Labels overrides entries in the built-in node label table.
	Labels map[string]string `yaml:"labels"`
}

// DisplayConfig contains terminal output settings.
type DisplayConfig struct {
	// Color enables ANSI colors when stdout is a terminal.
	Color bool `yaml:"color"`

	// MaxLabelWidth truncates long labels in table views.
	MaxLabelWidth int `yaml:"max_label_width"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Taxtrace: TaxtraceConfig{
			ReturnFile: "return.yaml",
			Year:       2024,
			Display: DisplayConfig{
				Color:         true,
				MaxLabelWidth: 40,
			},
			Labels: make(map[string]string),
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfig searches for a configuration file starting from the given path.
func FindConfig(startPath string) (string, error) {
	// Check common locations
	candidates := []string{
		".taxtrace/config.yaml",
		"taxtrace.yaml",
		"taxtrace.yml",
	}

	// Search from start path upward
	dir := startPath
	for {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no taxtrace configuration found")
}

// LoadFromDir loads configuration from the given directory.
func LoadFromDir(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		// Return default config if no config file found
		return DefaultConfig(), nil
	}

	return Load(path)
}

// ReturnPath returns the resolved return-file path.
func (c *Config) ReturnPath(baseDir string) string {
	if filepath.IsAbs(c.Taxtrace.ReturnFile) {
		return c.Taxtrace.ReturnFile
	}
	return filepath.Join(baseDir, c.Taxtrace.ReturnFile)
}
