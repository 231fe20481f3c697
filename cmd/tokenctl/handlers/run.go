// Package handlers implements command execution logic for the tokenctl CLI.
package handlers

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vaultline-dev/tokenbridge/cmd/tokenctl/client"
	"github.com/vaultline-dev/tokenbridge/cmd/tokenctl/config"
	"github.com/vaultline-dev/tokenbridge/cmd/tokenctl/utils"
	"github.com/vaultline-dev/tokenbridge/internal/batch"
	"github.com/vaultline-dev/tokenbridge/internal/logging"
	"github.com/vaultline-dev/tokenbridge/internal/tabular"
)

// HandleRun executes the batch tokenization run: read the input CSV, submit
// fixed-size batches to the tokenize API in order, and write the
// concatenated results as the output CSV.
//
// Every error is fatal to the whole run and nothing is written on failure;
// the output file only exists once every batch has come back with the right
// record count.
func HandleRun(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	rows, err := tabular.ReadCSV(config.Global.Input)
	if err != nil {
		return err
	}
	logging.Debug("Read %d rows from %s", len(rows), config.Global.Input)

	apiClient := client.NewTokenizeAPIClient(config.Global.APIURL, config.Global.Timeout)

	runConfig := &batch.Config{
		BatchSize: config.Global.BatchSize,
		BatchKey:  config.Global.BatchKey,
	}

	transformed, err := batch.Run(runConfig, apiClient, rows)
	if err != nil {
		return err
	}

	if err := tabular.WriteCSV(config.Global.Output, transformed); err != nil {
		return err
	}

	fmt.Printf("Tokenized %d rows -> %s\n", len(transformed), config.Global.Output)
	return nil
}
