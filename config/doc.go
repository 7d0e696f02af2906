// Package config loads and validates trackctl configuration from TOML.
//
// Missing files are not an error: Load falls back to Default so the CLI works
// without any configuration. Every value is checked by Validate before use.
package config
