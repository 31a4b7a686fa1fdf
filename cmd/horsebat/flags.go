package main

import (
	"fmt"
	"slices"
	"strings"
)

// choiceValue is a pflag.Value restricted to a fixed set of spellings, so bad
// values are rejected while flags are parsed.
type choiceValue struct {
	value   string
	choices []string
}

func newChoiceValue(value string, choices []string) *choiceValue {
	return &choiceValue{value: value, choices: choices}
}

func (c *choiceValue) String() string {
	return c.value
}

func (c *choiceValue) Set(raw string) error {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !slices.Contains(c.choices, normalized) {
		return fmt.Errorf("must be one of %s", strings.Join(c.choices, ", "))
	}
	c.value = normalized
	return nil
}

func (c *choiceValue) Type() string {
	return "choice"
}

// usageError marks failures caused by how the command was invoked; the
// usage text is printed alongside them.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}
