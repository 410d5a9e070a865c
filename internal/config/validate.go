package config

import (
	"fmt"

	"github.com/lkho/lrc-maker/internal/lrc"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateLRC(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateLRC() error {
	if _, err := lrc.LineTerminatorFromName(c.LRC.LineTerminator); err != nil {
		return fmt.Errorf("lrc.line_terminator must be crlf, lf or cr: %w", err)
	}
	return nil
}

// LineTerminator returns the configured output terminator.
func (c *Config) LineTerminator() string {
	eol, err := lrc.LineTerminatorFromName(c.LRC.LineTerminator)
	if err != nil {
		return lrc.DefaultLineTerminator
	}
	return eol
}

// ParseOptions returns the configured parse trimming.
func (c *Config) ParseOptions() lrc.ParseOptions {
	return lrc.ParseOptions{TrimStart: c.LRC.TrimStart, TrimEnd: c.LRC.TrimEnd}
}
