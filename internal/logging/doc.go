// Package logging assembles structured slog loggers for horsebat.
//
// It owns the console and JSON handlers and level parsing. Every handler
// writes to stderr (or a caller-supplied writer): stdout is reserved for the
// generated password, so scripts can capture it without filtering log lines.
// The package also provides a no-op logger for tests and wiring code that
// cannot fail.
package logging
