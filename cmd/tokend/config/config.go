// Package config provides configuration management for the tokend daemon.
package config

import "github.com/vaultline-dev/tokenbridge/internal/version"

const (
	// DefaultBindAddr is the default HTTP bind address for the tokenize API.
	// Loopback by default; override with --api to expose externally.
	DefaultBindAddr = "127.0.0.1:8080"
)

// Version returns the current tokend daemon version from the centralized version package
var Version = version.TokendVersion

// Global holds the daemon configuration
var Global struct {
	BindAddr string // HTTP API bind address as host:port
	BindHost string // Parsed bind host (set during validation)
	BindPort int    // Parsed bind port (set during validation)
	LogLevel string // Log level: DEBUG, INFO, WARN, ERROR
	LogFile  string // Optional log file path; empty means stdout/stderr
}
