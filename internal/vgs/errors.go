// Package vgs implements the HTTP client for a VGS-style tokenization proxy.
//
// The proxy is an opaque external collaborator: JSON payloads are posted to
// an inbound route where aliasing rules are configured, and the proxy returns
// the same payload with sensitive fields replaced by opaque tokens. The
// client is schema-agnostic and performs no interpretation of field names.
//
// ERROR TAXONOMY:
// All failures wrap one of the sentinel errors below so callers can classify
// them with errors.Is without parsing messages:
//   - ErrConfig: missing or malformed configuration (fatal, never retried)
//   - ErrNetwork: transport failure or non-2xx upstream status
//   - ErrDecode: upstream response body was not valid JSON
//   - ErrShape: upstream response JSON did not match the expected structure
//   - ErrCountMismatch: returned record count differed from the sent count
//
// None of these are retried at any layer; retry and backoff are an
// external-operator concern.
package vgs

import "errors"

var (
	// ErrConfig indicates missing or malformed client configuration.
	ErrConfig = errors.New("configuration error")

	// ErrNetwork indicates a transport failure or a non-2xx proxy status.
	ErrNetwork = errors.New("network error")

	// ErrDecode indicates the proxy response body was not valid JSON.
	ErrDecode = errors.New("decode error")

	// ErrShape indicates the proxy response JSON did not have the expected
	// structure for the request shape that was sent.
	ErrShape = errors.New("unexpected response shape")

	// ErrCountMismatch indicates a tokenization call returned a different
	// number of records than it was sent. Checked by callers, not by the
	// client itself.
	ErrCountMismatch = errors.New("record count mismatch")
)
