package batch

import (
	"fmt"

	"github.com/vaultline-dev/tokenbridge/internal/logging"
	"github.com/vaultline-dev/tokenbridge/internal/vgs"
)

const (
	// DefaultBatchSize is the number of rows sent per tokenize call when no
	// batch size is configured.
	DefaultBatchSize = 500
)

// Config holds the parameters for one batch run.
type Config struct {
	BatchSize int    // Maximum rows per tokenize call; must be positive
	BatchKey  string // Optional batch_key forwarded to the tokenize operation
}

// DefaultConfig returns a Config with the default batch size and no batch key.
func DefaultConfig() *Config {
	return &Config{
		BatchSize: DefaultBatchSize,
	}
}

// Validate checks the run parameters.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	return nil
}

// Partition splits rows into contiguous batches of at most size rows,
// preserving row order within and across batches. The final batch may be
// smaller than size.
func Partition(rows []vgs.Record, size int) [][]vgs.Record {
	if len(rows) == 0 {
		return nil
	}

	batches := make([][]vgs.Record, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		batches = append(batches, rows[start:end])
	}
	return batches
}

// Run submits every batch in order through the tokenizer and returns the
// concatenation of the responses in batch order.
//
// Each batch's returned record count must equal its row count; a mismatch
// fails the whole run with ErrCountMismatch and nothing is returned, so the
// caller never materializes partial output. Any tokenize failure likewise
// aborts immediately with no retry. Record order within a batch is whatever
// the upstream produced.
func Run(cfg *Config, tokenizer Tokenizer, rows []vgs.Record) ([]vgs.Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	batches := Partition(rows, cfg.BatchSize)
	out := make([]vgs.Record, 0, len(rows))

	for i, b := range batches {
		logging.Debug("Tokenizing batch %d/%d (%d rows)", i+1, len(batches), len(b))

		transformed, err := tokenizer.Tokenize(b, cfg.BatchKey)
		if err != nil {
			return nil, fmt.Errorf("batch %d/%d failed: %w", i+1, len(batches), err)
		}
		if len(transformed) != len(b) {
			return nil, fmt.Errorf("%w: batch %d/%d returned %d records, expected %d",
				vgs.ErrCountMismatch, i+1, len(batches), len(transformed), len(b))
		}

		out = append(out, transformed...)
	}

	return out, nil
}
