// Package batch drives the sequential batching pipeline between a tabular
// dataset and the tokenization service.
//
// Rows are partitioned into contiguous fixed-size batches and submitted
// strictly one at a time, in input order, with results assembled in the same
// order. There is deliberately no parallel submission: the ordering contract
// across batches is part of the output format, and each batch's network call
// blocks until response or timeout.
package batch

import "github.com/vaultline-dev/tokenbridge/internal/vgs"

// Tokenizer submits one batch of records for tokenization and returns the
// transformed records. The interface decouples the runner from the concrete
// HTTP client so the partitioning and count-check logic is testable without
// a server.
type Tokenizer interface {
	Tokenize(records []vgs.Record, batchKey string) ([]vgs.Record, error)
}
