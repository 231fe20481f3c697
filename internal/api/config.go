// Package api provides the HTTP server for the tokenization service.
//
// This file defines configuration structures and validation logic for the
// REST server that fronts the external tokenization proxy. The configuration
// covers network binding parameters and the factory used to construct proxy
// clients, keeping the server itself free of environment access so it stays
// unit-testable with injected configuration.
package api

import (
	"fmt"

	"github.com/vaultline-dev/tokenbridge/internal/api/handlers"
	"github.com/vaultline-dev/tokenbridge/internal/validate"
)

const (
	// DefaultAPIPort is the default port for the tokenization HTTP server.
	// Matches the default TOKEN_API_URL used by the batch driver CLI.
	DefaultAPIPort = 8080
)

// Config holds all configuration parameters required to run the tokenization
// HTTP server.
//
// The ClientFactory is the server's only dependency: each /tokenize call
// constructs a fresh proxy client through it, so configuration changes in the
// process environment take effect without a restart and tests can substitute
// a fake tokenizer.
type Config struct {
	BindAddr      string                  // HTTP server bind address (e.g. "0.0.0.0")
	BindPort      int                     // HTTP server bind port
	ClientFactory handlers.ClientFactory  // Constructs the proxy client per call
}

// DefaultConfig creates a Config with sensible defaults for local development:
// loopback binding, the standard port, and the environment-driven proxy
// client factory.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:      "127.0.0.1",
		BindPort:      DefaultAPIPort,
		ClientFactory: handlers.EnvClientFactory,
	}
}

// Validate checks that the server can bind and that a client factory is
// wired, surfacing configuration problems before startup instead of on the
// first request.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidatePortRange(c.BindPort); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	if c.ClientFactory == nil {
		return fmt.Errorf("client factory cannot be nil")
	}
	return nil
}
