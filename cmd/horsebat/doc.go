// Package main hosts the horsebat CLI entrypoint.
//
// A single Cobra command translates flags and the optional word-list argument
// into a generate.Options value, runs one generation, and prints the password
// on stdout. Configuration resolution (built-in defaults, then the TOML file,
// then explicit flags) and stderr diagnostics live here; the pipeline itself
// lives in the internal packages.
package main
