// Package version provides centralized version information for tokenbridge
// binaries. The tokend daemon and tokenctl CLI version independently while
// sharing this single source of truth, keeping each binary's reported
// version consistent across flags, logs, and User-Agent headers.
// All versions follow semantic versioning (semver) conventions.

package version

// TokendVersion holds the current tokend daemon version.
// Format: major.minor.patch[-prerelease][+build]
const TokendVersion = "0.1.0-dev"

// TokenctlVersion holds the current tokenctl CLI version.
// This is used by the batch driver binary and allows independent evolution
// of the command-line tool separate from the service daemon.
// Format: major.minor.patch[-prerelease][+build]
const TokenctlVersion = "0.1.0-dev"
