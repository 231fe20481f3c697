// Package utils contains utility functions for the tokend daemon.
package utils

import (
	"fmt"
)

// DisplayLogo prints the tokend ASCII logo with version information
func DisplayLogo(version string) {
	fmt.Println()
	fmt.Println(` ░░░░░░░░░░░░░░░░░░░░░░░░░░░░░
 ░▀█▀░█▀█░█░█░█▀▀░█▀█░█▀▄░░░░░
 ░░█░░█░█░█▀▄░█▀▀░█░█░█░█░░░░░
 ░░▀░░▀▀▀░▀░▀░▀▀▀░▀░▀░▀▀░░░░░░
 ░░░░░░░░░░░░░░░░░░░░░░░░░░░░░`)
	fmt.Printf("\n tokend v%s - PII Tokenization Service\n", version)
	fmt.Println(" JSON in, tokens out - aliasing happens at the proxy")
	fmt.Println()
}
