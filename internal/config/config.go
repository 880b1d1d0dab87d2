// Package config manages the on-disk YAML configuration. The only
// setting today is the CSV file location; the file format stays
// compatible with earlier releases (`csv_file_path` key).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileData is the YAML document layout.
type fileData struct {
	CSVFilePath string `yaml:"csv_file_path"`
}

// Config holds the loaded configuration and the path it came from.
// Construct via Load; paths are explicit so tests can point at
// temporary directories.
type Config struct {
	path string
	data fileData
}

// ConfigError reports a failed configuration load or save with the
// underlying cause preserved.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DefaultPath returns the default config file location,
// ~/.config/bp-tracker/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &ConfigError{Path: "", Err: err}
	}
	return filepath.Join(home, ".config", "bp-tracker", "config.yaml"), nil
}

// DefaultCSVPath returns the default data file location,
// ~/.local/share/bp-tracker/blood_pressure.csv.
func DefaultCSVPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bp-tracker", "blood_pressure.csv")
	}
	return filepath.Join(home, ".local", "share", "bp-tracker", "blood_pressure.csv")
}

// Load reads configuration from path. An empty path selects the
// default location; a missing file yields defaults without error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := &Config{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	if err := yaml.Unmarshal(raw, &cfg.data); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// Path returns the config file location.
func (c *Config) Path() string {
	return c.path
}

// CSVPath returns the configured CSV file path, falling back to the
// default location when unset.
func (c *Config) CSVPath() string {
	if c.data.CSVFilePath != "" {
		return c.data.CSVFilePath
	}
	return DefaultCSVPath()
}

// SetCSVPath updates the CSV path and persists the config file.
func (c *Config) SetCSVPath(path string) error {
	c.data.CSVFilePath = path
	return c.Save()
}

// Save writes the configuration to disk, creating parent directories
// as needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return &ConfigError{Path: c.path, Err: err}
	}

	out, err := yaml.Marshal(c.data)
	if err != nil {
		return &ConfigError{Path: c.path, Err: err}
	}
	if err := os.WriteFile(c.path, out, 0o644); err != nil {
		return &ConfigError{Path: c.path, Err: err}
	}
	return nil
}

// InitializeDefault writes a config file with default values if none
// exists yet.
func (c *Config) InitializeDefault() error {
	if _, err := os.Stat(c.path); err == nil {
		return nil
	}
	if c.data.CSVFilePath == "" {
		c.data.CSVFilePath = DefaultCSVPath()
	}
	return c.Save()
}
