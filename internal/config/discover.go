// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "moviecat", "config.toml")
}

// Resolve returns path when given, after checking it exists, and
// otherwise falls back to Discover.
func Resolve(path string) (string, error) {
	if path == "" {
		return Discover()
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("config %s: %w", path, err)
	}
	return path, nil
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. MOVIECAT_CONFIG environment variable
//  2. ./config.toml (current directory)
//  3. $XDG_CONFIG_HOME/moviecat/config.toml
//  4. /etc/moviecat/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("MOVIECAT_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("MOVIECAT_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./config.toml",
		DefaultPath(),
		"/etc/moviecat/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
