// Package main provides the entry point for the tokenctl CLI.
//
// tokenctl is the batch driver of the tokenization pipeline: it partitions a
// CSV into fixed-size row batches, submits them sequentially to the tokend
// /tokenize API, and materializes the concatenated responses as the output
// CSV. It holds no tokenization logic of its own.
package main

import (
	"os"

	"github.com/vaultline-dev/tokenbridge/cmd/tokenctl/commands"
)

func init() {
	commands.SetupFlags()
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
