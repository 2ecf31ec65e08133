// Package config defines the application configuration, its TOML file
// discovery, and the read-only settings view.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug"`
	// DataFile is the path of the JSON file the store persists to
	DataFile string `toml:"data_file"`
	// AnthropicAPIKey enables the package suggestion command when set
	AnthropicAPIKey string `toml:"anthropic_api_key"`
	// Colors overrides the default theme colors
	Colors Colors `toml:"colors"`

	configPathUsed string // Path to the configuration file used
}

// Colors holds the user-configurable theme colors. Empty fields fall
// back to the built-in defaults.
type Colors struct {
	Primary       string `toml:"primary"`
	Error         string `toml:"error"`
	Success       string `toml:"success"`
	Warning       string `toml:"warning"`
	Muted         string `toml:"muted"`
	Paid          string `toml:"paid"`
	Unpaid        string `toml:"unpaid"`
	Border        string `toml:"border"`
	Background    string `toml:"background"`
	Text          string `toml:"text"`
	SecondaryText string `toml:"secondary_text"`
}

// PathUsed returns the path of the config file the settings were read
// from, or empty when the defaults are in effect.
func (c Config) PathUsed() string {
	return c.configPathUsed
}

// FilePaths returns the list of possible configuration file paths
// in order of precedence (first found wins).
func FilePaths() []string {
	var paths []string

	// Current directory (highest precedence)
	paths = append(paths, "laundrytui.toml")

	// User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "laundrytui", "config.toml"))
	}

	// User home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".laundrytui.toml"))
		paths = append(paths, filepath.Join(homeDir, ".config", "laundrytui", "config.toml"))
	}

	// System-wide config directory (lowest precedence)
	paths = append(paths, "/etc/laundrytui/config.toml")

	return paths
}

// findConfigFile searches for a configuration file in the standard locations.
// Returns the path to the first existing config file, or empty string if none found.
func findConfigFile() string {
	for _, path := range FilePaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFile loads configuration from a TOML file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config file %s: %w", path, err)
	}

	config.configPathUsed = path
	return &config, nil
}

// Load loads configuration from the first discovered file, otherwise
// returns the default config.
func Load() (*Config, error) {
	configPath := findConfigFile()
	if configPath == "" {
		// No config file found, return default configuration
		return &Config{}, nil
	}

	return LoadFile(configPath)
}
