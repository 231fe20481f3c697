// Package commands provides the command structure for tokenctl.
//
// tokenctl has a single job - drive a CSV through the tokenize API in
// batches - so the root command runs it directly rather than nesting
// subcommands. All flags live on the root.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/vaultline-dev/tokenbridge/cmd/tokenctl/config"
	"github.com/vaultline-dev/tokenbridge/cmd/tokenctl/handlers"
	"github.com/vaultline-dev/tokenbridge/internal/batch"
	"github.com/vaultline-dev/tokenbridge/internal/version"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "tokenctl",
	Short: "CLI tool for tokenizing PII in CSV files via the tokenization API",
	Long: `Tokenization CLI (tokenctl) reads a CSV, posts its rows in batches to
the tokenize API (backed by a VGS-style aliasing proxy), and writes the
tokenized rows as a new CSV.

Batches are submitted strictly in order and the output preserves batch
order. Any failure aborts the run and no output file is written.`,
	Version:      version.TokenctlVersion,
	SilenceUsage: true,
	Example: `  # Tokenize a cleaned CSV against a local tokend
  tokenctl --input=cleaned.csv --output=tokenized.csv

  # Smaller batches against a remote API
  tokenctl --input=in.csv --output=out.csv --batch-size=100 \
    --api-url=http://10.0.0.5:8080/tokenize

  # Nest each batch under a key the proxy route expects
  tokenctl --input=in.csv --output=out.csv --batch-key=records

  # Show verbose output
  DEBUG=true tokenctl --input=in.csv --output=out.csv`,
	PersistentPreRunE: config.ValidateGlobalFlags,
	RunE:              handlers.HandleRun,
}

// SetupFlags configures all CLI flags
func SetupFlags() {
	RootCmd.Flags().StringVar(&config.Global.Input, "input", "",
		"Input CSV path")
	RootCmd.Flags().StringVar(&config.Global.Output, "output", "",
		"Output tokenized CSV path")
	RootCmd.Flags().IntVar(&config.Global.BatchSize, "batch-size", batch.DefaultBatchSize,
		"Rows per API call")
	RootCmd.Flags().StringVar(&config.Global.APIURL, "api-url", config.APIURLDefault(),
		"Tokenization API URL")
	RootCmd.Flags().StringVar(&config.Global.BatchKey, "batch-key", "",
		"Optional key the proxy expects the record array under")
	RootCmd.Flags().StringVar(&config.Global.LogLevel, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	RootCmd.Flags().IntVar(&config.Global.Timeout, "timeout", 30,
		"Per-call timeout in seconds")

	RootCmd.MarkFlagRequired("input")
	RootCmd.MarkFlagRequired("output")
}
