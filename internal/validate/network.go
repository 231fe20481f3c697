// Package validate provides network and configuration validation utilities
// for the tokenization pipeline, ensuring endpoints and settings are usable
// before any call leaves the process.
//
// Implements IP address, port range, URL, and address format validation using
// the go-playground/validator library. Prevents configuration errors that
// would otherwise surface mid-run as confusing transport failures.
//
// VALIDATION FEATURES:
//   - IP Address: IPv4 and IPv6 format validation
//   - Port Range: Valid port numbers (0-65535)
//   - URL: Proxy and API endpoint URL validation
//   - Format: Proper "host:port" address formatting
//
// Used for validating the daemon bind address, the external proxy URL, and
// the tokenize API URL consumed by the batch driver CLI.
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: ip, url, min, max - no custom registration needed
}

// NetworkAddress represents a validated network address with host and port
// components for service endpoints. Uses struct tags for automatic validation
// via the go-playground/validator library.
type NetworkAddress struct {
	Host string `validate:"required,ip"`              // Built-in IP validator
	Port int    `validate:"required,min=0,max=65535"` // Built-in range validator
}

// String returns the network address in standard "host:port" format suitable
// for network connections, configuration display, and logging.
func (na NetworkAddress) String() string {
	return fmt.Sprintf("%s:%d", na.Host, na.Port)
}

// ParseBindAddress parses and validates a "host:port" address string for
// server binding. Provides format checking, IP address validation, and port
// range verification with clear error messages for troubleshooting.
//
// Essential for processing user-provided network addresses from CLI arguments
// before attempting to bind, preventing runtime failures deep in startup.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	// Validate using struct tags
	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// ValidateField validates individual values against specified validation rules
// using the go-playground/validator library. Provides flexible validation for
// single fields without requiring struct definitions.
//
// Example: ValidateField("192.168.1.1", "required,ip")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateStruct validates a struct using its validate tags. Used by config
// packages that declare validation rules directly on their fields.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateURL validates that a string is a well-formed URL suitable for use
// as an HTTP endpoint. Used for the external proxy base URL and the tokenize
// API URL, both of which come from environment variables or CLI flags.
func ValidateURL(raw string) error {
	if err := validate.Var(raw, "required,url"); err != nil {
		return fmt.Errorf("invalid URL '%s': %w", raw, err)
	}
	return nil
}
