package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCleanup(); err != nil {
		return err
	}
	if err := c.validateSelection(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCleanup() error {
	// An empty case means "leave slugify's casing alone".
	if c.Cleanup.Case != "" && !slices.Contains(CaseChoices, c.Cleanup.Case) {
		return invalidChoice("cleanup.case", c.Cleanup.Case, CaseChoices)
	}
	if c.Cleanup.FirstCase != "" && !slices.Contains(FirstCaseChoices, c.Cleanup.FirstCase) {
		return invalidChoice("cleanup.first_case", c.Cleanup.FirstCase, FirstCaseChoices)
	}
	return nil
}

func (c *Config) validateSelection() error {
	if c.Selection.MinLength < 0 {
		return errors.New("selection.min_length must not be negative (0 disables the bound)")
	}
	if c.Selection.MaxLength < 0 {
		return errors.New("selection.max_length must not be negative (0 disables the bound)")
	}
	if c.Selection.MinLength > 0 && c.Selection.MaxLength > 0 && c.Selection.MinLength > c.Selection.MaxLength {
		return fmt.Errorf("selection.min_length (%d) must not exceed selection.max_length (%d)", c.Selection.MinLength, c.Selection.MaxLength)
	}
	// Zero words is allowed and yields an empty password.
	if c.Selection.WordCount < 0 {
		return errors.New("selection.word_count must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(LogLevelChoices, c.Logging.Level) {
		return invalidChoice("logging.level", c.Logging.Level, LogLevelChoices)
	}
	return nil
}

func invalidChoice(field, value string, choices []string) error {
	return fmt.Errorf("%s: invalid choice %q (choose from %s)", field, value, strings.Join(choices, ", "))
}
