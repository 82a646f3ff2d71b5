// Package config loads, normalizes, and validates FileVora configuration
// from TOML files with sensible defaults for every field.
package config
