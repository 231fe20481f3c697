// Package config provides configuration management for the tokenctl CLI.
package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultline-dev/tokenbridge/internal/logging"
	"github.com/vaultline-dev/tokenbridge/internal/validate"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateAPIURL(); err != nil {
		return err
	}

	if err := ValidateBatchSize(); err != nil {
		return err
	}

	return nil
}

// ValidateAPIURL validates the --api-url flag
func ValidateAPIURL() error {
	if err := validate.ValidateURL(Global.APIURL); err != nil {
		logging.Error("Invalid API URL '%s': %v", Global.APIURL, err)
		return fmt.Errorf("invalid API URL - expected a full URL (e.g., http://127.0.0.1:8080/tokenize)")
	}
	return nil
}

// ValidateBatchSize validates the --batch-size flag
func ValidateBatchSize() error {
	if Global.BatchSize <= 0 {
		logging.Error("Invalid batch size %d - must be a positive integer", Global.BatchSize)
		return fmt.Errorf("batch size must be positive")
	}
	return nil
}
