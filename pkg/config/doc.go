// Package config handles configuration management for chromasync.
// It loads configuration from layered sources: embedded defaults, the
// user's chromasync.toml (or chromasync.yaml), CHROMASYNC_ environment
// variables and command-line overrides, in increasing precedence.
package config
