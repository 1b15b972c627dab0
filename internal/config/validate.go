package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWalk(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateWalk() error {
	if c.Walk.Jobs < -1 {
		return errors.New("walk.jobs must be >= -1 (-1 selects the CPU-based default, 0 removes the bound)")
	}
	switch c.Walk.Padding {
	case "stale", "zero":
	default:
		return fmt.Errorf("walk.padding: unsupported value %q (want stale or zero)", c.Walk.Padding)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "text", "json", "table":
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q (want text, json or table)", c.Output.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
