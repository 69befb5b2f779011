package config

import (
	"fmt"
	"strings"
	"time"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if !isValidLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(validLogLevels, ", "), c.Log.Level)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	if c.Voice.MaxCommandLength <= 0 {
		return fmt.Errorf("voice.max_command_length must be > 0 (got %d)", c.Voice.MaxCommandLength)
	}
	if c.Voice.HistoryLimit <= 0 {
		return fmt.Errorf("voice.history_limit must be > 0 (got %d)", c.Voice.HistoryLimit)
	}

	if c.Monitor.AlertWindow <= 0 {
		return fmt.Errorf("monitor.alert_window must be > 0 (got %s)", c.Monitor.AlertWindow)
	}
	if c.Monitor.LocationRetention < 24*time.Hour {
		return fmt.Errorf("monitor.location_retention must be >= 24h (got %s)", c.Monitor.LocationRetention)
	}

	if c.Directions.CacheTTL <= 0 {
		return fmt.Errorf("directions.cache_ttl must be > 0 (got %s)", c.Directions.CacheTTL)
	}
	if c.Directions.Enabled() && c.Directions.Model == "" {
		return fmt.Errorf("directions.model is required when directions.api_key is set")
	}

	return nil
}

func isValidLevel(level string) bool {
	for _, l := range validLogLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}
