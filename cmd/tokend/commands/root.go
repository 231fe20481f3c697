// Package commands provides the CLI command structure for the tokend daemon.
//
// The daemon uses a simple root command with a small flag set: where to bind
// the HTTP API and how to log. Proxy connectivity is configured entirely
// through VGS_* environment variables since headers typically carry secrets
// that must not appear in argv.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vaultline-dev/tokenbridge/cmd/tokend/config"
	"github.com/vaultline-dev/tokenbridge/cmd/tokend/daemon"
	"github.com/vaultline-dev/tokenbridge/cmd/tokend/utils"
	"github.com/vaultline-dev/tokenbridge/internal/logging"
	"github.com/vaultline-dev/tokenbridge/internal/version"
)

// Global variable to track log file handle for cleanup
var logFileHandle *os.File

// CleanupLogFile closes the log file handle if it exists.
// Called during daemon shutdown to ensure proper cleanup.
func CleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// Log to stderr since we're cleaning up the log file
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// Root command for the tokend daemon
var RootCmd = &cobra.Command{
	Use:   "tokend",
	Short: "HTTP service that tokenizes PII records via an external aliasing proxy",
	Long: `Tokenization daemon (tokend) exposes a /tokenize endpoint that forwards
JSON records to a VGS-style inbound proxy and returns the transformed records.

The proxy performs all aliasing; tokend only shapes requests and responses.
Configure the proxy via VGS_PROXY_URL, VGS_ROUTE_PATH, VGS_HEADERS_JSON,
and VGS_TIMEOUT environment variables.`,
	Version:      version.TokendVersion,
	SilenceUsage: true, // Don't show usage on errors
	Example: `  # Start on the default address (127.0.0.1:8080)
  VGS_PROXY_URL=https://tntXXX.sandbox.verygoodproxy.com tokend

  # Expose on all interfaces with verbose logging
  tokend --api=0.0.0.0:8080 --log-level=DEBUG

  # Log to a file instead of stdout/stderr
  tokend --log-file=/var/log/tokend.log`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Display logo first, before any validation or logging
		utils.DisplayLogo(version.TokendVersion)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup log file redirection if --log-file was specified
		if config.Global.LogFile != "" {
			// Create parent directories if they don't exist
			logDir := filepath.Dir(config.Global.LogFile)
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
			}

			// Open/create log file with append mode
			var err error
			logFileHandle, err = os.OpenFile(config.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("failed to open log file %s: %w", config.Global.LogFile, err)
			}

			// Redirect all logging to the file
			logging.SetOutput(logFileHandle)
		}

		logging.SetLevel(config.Global.LogLevel)

		return config.ValidateConfig(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer CleanupLogFile()
		return daemon.Run()
	},
}

// SetupFlags configures all daemon flags
func SetupFlags() {
	RootCmd.Flags().StringVar(&config.Global.BindAddr, "api", config.DefaultBindAddr,
		"HTTP API bind address (host:port)")
	RootCmd.Flags().StringVar(&config.Global.LogLevel, "log-level", "INFO",
		"Log level: DEBUG, INFO, WARN, ERROR")
	RootCmd.Flags().StringVar(&config.Global.LogFile, "log-file", "",
		"Log file path (logs to stdout/stderr when unset)")
}
