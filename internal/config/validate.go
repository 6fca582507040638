// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.Catalog.Path == "" {
		errs = append(errs, "catalog.path: required")
	}

	if c.Stats.URL != "" {
		u, err := url.Parse(c.Stats.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("stats.url: must be an absolute http(s) URL, got %q", c.Stats.URL))
		}
	}
	if c.Stats.TTL < 0 {
		errs = append(errs, fmt.Sprintf("stats.ttl: must not be negative, got %s", c.Stats.TTL))
	}
	if c.Stats.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("stats.timeout: must not be negative, got %s", c.Stats.Timeout))
	}
	if c.Stats.WarmInterval < 0 {
		errs = append(errs, fmt.Sprintf("stats.warm_interval: must not be negative, got %s", c.Stats.WarmInterval))
	}
	if c.Stats.WarmInterval > 0 && c.Stats.URL == "" {
		errs = append(errs, "stats.warm_interval: requires stats.url")
	}

	return errs
}
