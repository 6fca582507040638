// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultStatsURL is the statistics document the widget reads when none is configured.
const DefaultStatsURL = "https://drive.google.com/uc?export=download&id=1-5Q8zt1Fr-Uh4Mk4KoNQB27Zv2ty4ARy"

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Stats   StatsConfig   `toml:"stats"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

// CatalogConfig points at the JSON movie store.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// StatsConfig configures the remote statistics source.
// An empty URL disables the statistics endpoints.
type StatsConfig struct {
	URL          string        `toml:"url"`
	TTL          time.Duration `toml:"ttl"`
	Timeout      time.Duration `toml:"timeout"`
	WarmInterval time.Duration `toml:"warm_interval"` // 0 disables background refresh
}

// Load reads, parses and validates the configuration file.
// Unresolved environment variables and validation failures are
// reported together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults but skipping validation and missing-variable checks.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8484
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = "./db.json"
	}
	if c.Stats.TTL == 0 {
		c.Stats.TTL = 5 * time.Minute
	}
	if c.Stats.Timeout == 0 {
		c.Stats.Timeout = 10 * time.Second
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Stats: StatsConfig{URL: DefaultStatsURL}}
	cfg.applyDefaults()
	return cfg
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} references with environment values.
// Unset references are left in place and reported in missing; for
// ${VAR:?message} the report carries the message.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		name, op, arg := groups[1], groups[2], groups[3]

		value, ok := os.LookupEnv(name)
		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
