// Package config provides configuration management for the tokend daemon.
package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultline-dev/tokenbridge/internal/logging"
	"github.com/vaultline-dev/tokenbridge/internal/validate"
)

// ValidateConfig validates all daemon flags before startup
func ValidateConfig(cmd *cobra.Command, args []string) error {
	if err := ValidateBindAddress(); err != nil {
		return err
	}

	if err := ValidateLogLevel(); err != nil {
		return err
	}

	return nil
}

// ValidateBindAddress validates the --api flag and records the parsed
// host and port for server construction
func ValidateBindAddress() error {
	netAddr, err := validate.ParseBindAddress(Global.BindAddr)
	if err != nil {
		logging.Error("Invalid bind address '%s': %v", Global.BindAddr, err)
		return fmt.Errorf("invalid bind address - expected format: host:port (e.g., 127.0.0.1:8080)")
	}

	// Server must bind a specific port so the CLI default URL stays valid
	if err := validate.ValidateField(netAddr.Port, "required,min=1,max=65535"); err != nil {
		logging.Error("Invalid bind port %d: %v", netAddr.Port, err)
		return fmt.Errorf("bind port must be between 1-65535")
	}

	Global.BindHost = netAddr.Host
	Global.BindPort = netAddr.Port
	return nil
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	validLevels := map[string]bool{
		"DEBUG": true,
		"INFO":  true,
		"WARN":  true,
		"ERROR": true,
	}
	if !validLevels[Global.LogLevel] {
		logging.Error("Invalid log level '%s' - valid levels are: DEBUG, INFO, WARN, ERROR", Global.LogLevel)
		return fmt.Errorf("invalid log level - valid: DEBUG, INFO, WARN, ERROR")
	}
	return nil
}
