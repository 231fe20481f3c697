package api

import (
	"testing"

	"github.com/vaultline-dev/tokenbridge/internal/api/handlers"
)

// TestDefaultConfig tests the default configuration values
func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BindAddr != "127.0.0.1" {
		t.Errorf("DefaultConfig() BindAddr = %q, want \"127.0.0.1\"", config.BindAddr)
	}
	if config.BindPort != DefaultAPIPort {
		t.Errorf("DefaultConfig() BindPort = %d, want %d", config.BindPort, DefaultAPIPort)
	}
	if config.ClientFactory == nil {
		t.Error("DefaultConfig() ClientFactory is nil")
	}
}

// TestConfigValidate tests configuration validation
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name:        "valid default config",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "empty bind address",
			mutate:      func(c *Config) { c.BindAddr = "" },
			expectError: true,
		},
		{
			name:        "zero bind port",
			mutate:      func(c *Config) { c.BindPort = 0 },
			expectError: true,
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.BindPort = 70000 },
			expectError: true,
		},
		{
			name:        "nil client factory",
			mutate:      func(c *Config) { c.ClientFactory = nil },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				BindAddr:      "127.0.0.1",
				BindPort:      DefaultAPIPort,
				ClientFactory: handlers.EnvClientFactory,
			}
			tt.mutate(config)

			err := config.Validate()
			if (err != nil) != tt.expectError {
				t.Errorf("Validate() error = %v, expectError = %v", err, tt.expectError)
			}
		})
	}
}
