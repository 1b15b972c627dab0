package config

import "strings"

func (c *Config) normalize() {
	c.Walk.Padding = normalizeKeyword(c.Walk.Padding, defaultPadding)
	if c.Walk.Padding == "compat" {
		c.Walk.Padding = "stale"
	}
	c.Output.Format = normalizeKeyword(c.Output.Format, defaultFormat)
	c.Logging.Format = normalizeKeyword(c.Logging.Format, defaultLogFormat)
	c.Logging.Level = normalizeKeyword(c.Logging.Level, defaultLogLevel)
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
}

func normalizeKeyword(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

// Normalize canonicalizes keyword fields. Load already applies it; call it
// again after overriding fields in place.
func (c *Config) Normalize() {
	c.normalize()
}
