// Package main provides the entry point for the tokenization daemon (tokend).
//
// tokend fronts an external VGS-style tokenization proxy with a small HTTP
// API: a health check and a single tokenize operation. All aliasing happens
// at the proxy; the daemon shapes requests and responses and maps failures
// to configuration (500) or upstream (502) error classes.
package main

import (
	"os"

	"github.com/vaultline-dev/tokenbridge/cmd/tokend/commands"
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
