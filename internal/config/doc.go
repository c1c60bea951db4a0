// Package config loads and merges the application configuration for both
// binaries. Values come from environment variables, command-line flags and
// an optional JSON file; the sources are merged through a small builder and
// validated before use.
package config
