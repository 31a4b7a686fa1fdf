package config

import (
	"fmt"
	"strings"
)

// Normalize canonicalizes spellings and expands the word list path. Load
// calls it; callers that mutate a Config afterwards (for example from
// command-line flags) should call it again before Validate.
func (c *Config) Normalize() error {
	if err := c.normalizeWordlist(); err != nil {
		return err
	}
	c.normalizeCleanup()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeWordlist() error {
	c.Wordlist.Path = strings.TrimSpace(c.Wordlist.Path)
	if c.Wordlist.Path == "" {
		c.Wordlist.Path = defaultWordlistPath
	}
	var err error
	if c.Wordlist.Path, err = expandPath(c.Wordlist.Path); err != nil {
		return fmt.Errorf("wordlist.path: %w", err)
	}
	return nil
}

// Separators are taken verbatim: whitespace is a legitimate separator.
func (c *Config) normalizeCleanup() {
	c.Cleanup.Case = strings.ToLower(strings.TrimSpace(c.Cleanup.Case))
	c.Cleanup.FirstCase = strings.ToLower(strings.TrimSpace(c.Cleanup.FirstCase))
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
