// Package config provides configuration management for the tokenctl CLI.
package config

import (
	"os"

	"github.com/vaultline-dev/tokenbridge/internal/version"
)

const (
	// DefaultAPIURL is the tokenize API endpoint used when neither the
	// --api-url flag nor TOKEN_API_URL is set.
	DefaultAPIURL = "http://127.0.0.1:8080/tokenize"

	// EnvAPIURL names the environment variable that overrides the default
	// tokenize API endpoint.
	EnvAPIURL = "TOKEN_API_URL"
)

// Version returns the current tokenctl CLI version from the centralized version package
var Version = version.TokenctlVersion

// Global holds the global CLI configuration
var Global struct {
	Input     string // Input CSV path
	Output    string // Output CSV path
	BatchSize int    // Rows per tokenize API call
	APIURL    string // Tokenize API endpoint
	BatchKey  string // Optional batch_key forwarded to the API
	LogLevel  string // Log level for CLI operations
	Timeout   int    // Per-call timeout in seconds
}

// APIURLDefault resolves the default for the --api-url flag: TOKEN_API_URL
// when exported, otherwise the local daemon endpoint.
func APIURLDefault() string {
	if url := os.Getenv(EnvAPIURL); url != "" {
		return url
	}
	return DefaultAPIURL
}
