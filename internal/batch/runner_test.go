package batch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vaultline-dev/tokenbridge/internal/vgs"
)

// recordingTokenizer captures each submitted batch and echoes it back,
// optionally misbehaving on a chosen call
type recordingTokenizer struct {
	batches   [][]vgs.Record
	keys      []string
	failAt    int   // 1-based call index to fail on, 0 means never
	failErr   error // error returned at failAt
	shortAt   int   // 1-based call index to drop a record on, 0 means never
}

func (r *recordingTokenizer) Tokenize(records []vgs.Record, batchKey string) ([]vgs.Record, error) {
	r.batches = append(r.batches, records)
	r.keys = append(r.keys, batchKey)

	call := len(r.batches)
	if r.failAt != 0 && call == r.failAt {
		return nil, r.failErr
	}
	if r.shortAt != 0 && call == r.shortAt {
		return records[:len(records)-1], nil
	}
	return records, nil
}

// makeRows builds n rows with a position marker so order is checkable
func makeRows(n int) []vgs.Record {
	rows := make([]vgs.Record, n)
	for i := range rows {
		rows[i] = vgs.Record{"id": fmt.Sprintf("row-%d", i)}
	}
	return rows
}

// TestPartition tests the contiguous batch split
func TestPartition(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		size      int
		wantSizes []int
	}{
		{"empty input", 0, 2, nil},
		{"single short batch", 1, 500, []int{1}},
		{"exact multiple", 4, 2, []int{2, 2}},
		{"remainder batch", 5, 2, []int{2, 2, 1}},
		{"size larger than input", 3, 10, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := Partition(makeRows(tt.rows), tt.size)

			if len(batches) != len(tt.wantSizes) {
				t.Fatalf("Partition() returned %d batches, want %d", len(batches), len(tt.wantSizes))
			}
			for i, want := range tt.wantSizes {
				if len(batches[i]) != want {
					t.Errorf("batch %d size = %d, want %d", i, len(batches[i]), want)
				}
			}
		})
	}
}

// TestPartitionPreservesOrder tests that rows stay in input order across batches
func TestPartitionPreservesOrder(t *testing.T) {
	batches := Partition(makeRows(5), 2)

	i := 0
	for _, b := range batches {
		for _, row := range b {
			want := fmt.Sprintf("row-%d", i)
			if row["id"] != want {
				t.Errorf("row at position %d has id %v, want %s", i, row["id"], want)
			}
			i++
		}
	}
}

// TestRunSubmitsBatchesInOrder tests call count, sizing, and output assembly
func TestRunSubmitsBatchesInOrder(t *testing.T) {
	tokenizer := &recordingTokenizer{}
	cfg := &Config{BatchSize: 2}

	out, err := Run(cfg, tokenizer, makeRows(5))
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	// 5 rows at batch size 2: exactly 3 calls of sizes 2, 2, 1
	if len(tokenizer.batches) != 3 {
		t.Fatalf("Run() issued %d calls, want 3", len(tokenizer.batches))
	}
	for i, want := range []int{2, 2, 1} {
		if len(tokenizer.batches[i]) != want {
			t.Errorf("call %d batch size = %d, want %d", i, len(tokenizer.batches[i]), want)
		}
	}

	// Output equals the concatenation of the responses in call order
	if len(out) != 5 {
		t.Fatalf("Run() returned %d rows, want 5", len(out))
	}
	for i, row := range out {
		want := fmt.Sprintf("row-%d", i)
		if row["id"] != want {
			t.Errorf("output row %d id = %v, want %s", i, row["id"], want)
		}
	}
}

// TestRunForwardsBatchKey tests that the configured batch key reaches every call
func TestRunForwardsBatchKey(t *testing.T) {
	tokenizer := &recordingTokenizer{}
	cfg := &Config{BatchSize: 2, BatchKey: "records"}

	if _, err := Run(cfg, tokenizer, makeRows(3)); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	for i, key := range tokenizer.keys {
		if key != "records" {
			t.Errorf("call %d batch key = %q, want \"records\"", i, key)
		}
	}
}

// TestRunCountMismatchAborts tests that a short batch fails the whole run
func TestRunCountMismatchAborts(t *testing.T) {
	tokenizer := &recordingTokenizer{shortAt: 2}
	cfg := &Config{BatchSize: 2}

	out, err := Run(cfg, tokenizer, makeRows(5))
	if err == nil {
		t.Fatal("Run() expected error on count mismatch, got nil")
	}
	if !errors.Is(err, vgs.ErrCountMismatch) {
		t.Errorf("Run() error = %v, want ErrCountMismatch", err)
	}
	if out != nil {
		t.Errorf("Run() returned %d rows on failure, want none", len(out))
	}

	// The failing call is the last one issued: no retry, no further batches
	if len(tokenizer.batches) != 2 {
		t.Errorf("Run() issued %d calls, want 2 (abort at the mismatched batch)", len(tokenizer.batches))
	}
}

// TestRunTokenizeFailureAborts tests that an upstream error stops the run
func TestRunTokenizeFailureAborts(t *testing.T) {
	upstreamErr := fmt.Errorf("%w: proxy returned status 502", vgs.ErrNetwork)
	tokenizer := &recordingTokenizer{failAt: 1, failErr: upstreamErr}
	cfg := &Config{BatchSize: 2}

	_, err := Run(cfg, tokenizer, makeRows(5))
	if err == nil {
		t.Fatal("Run() expected error, got nil")
	}
	if !errors.Is(err, vgs.ErrNetwork) {
		t.Errorf("Run() error = %v, want it to wrap ErrNetwork", err)
	}
	if len(tokenizer.batches) != 1 {
		t.Errorf("Run() issued %d calls after a failure, want 1", len(tokenizer.batches))
	}
}

// TestRunEmptyInput tests that no calls are made for an empty dataset
func TestRunEmptyInput(t *testing.T) {
	tokenizer := &recordingTokenizer{}

	out, err := Run(DefaultConfig(), tokenizer, nil)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Run() returned %d rows for empty input, want 0", len(out))
	}
	if len(tokenizer.batches) != 0 {
		t.Errorf("Run() issued %d calls for empty input, want 0", len(tokenizer.batches))
	}
}

// TestConfigValidate tests batch size validation
func TestConfigValidate(t *testing.T) {
	for _, size := range []int{0, -1} {
		cfg := &Config{BatchSize: size}
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate() with batch size %d expected error, got nil", size)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Validate() on default config unexpected error: %v", err)
	}
}
