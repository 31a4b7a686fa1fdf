// Package config loads, normalizes, and validates horsebat configuration.
//
// Built-in defaults mirror the command-line defaults. An optional TOML file
// (by default ~/.config/horsebat/config.toml) is decoded over them, so a user
// can change the word list or house style once instead of on every
// invocation. Command-line flags are applied on top by the CLI.
//
// Always obtain settings through Load so downstream code receives expanded
// paths, canonical enum spellings, and clear validation errors.
package config
