// Package tabular bridges CSV files and the schema-agnostic Record type.
//
// Reading treats the first row as a header and produces one Record per data
// row with column names as keys and cell contents as string values. Writing
// goes the other way for records whose columns may differ from the input,
// since tokenization can replace or add fields.
package tabular

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/vaultline-dev/tokenbridge/internal/vgs"
)

// ReadCSV reads a CSV file into records. The first row names the columns;
// every data row becomes one Record with string values.
func ReadCSV(path string) ([]vgs.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV %s has no header row", path)
	}

	header := rows[0]
	records := make([]vgs.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(vgs.Record, len(header))
		for i, name := range header {
			record[name] = row[i]
		}
		records = append(records, record)
	}

	return records, nil
}

// Columns returns the union of keys across records. Ordering is
// deterministic: columns appear in the order their record first contributes
// them, with each record's new keys added alphabetically. JSON objects lose
// key order on decode, so first-seen plus sorting is the stable choice.
func Columns(records []vgs.Record) []string {
	var cols []string
	seen := make(map[string]bool)

	for _, record := range records {
		keys := make([]string, 0, len(record))
		for k := range record {
			if !seen[k] {
				keys = append(keys, k)
				seen[k] = true
			}
		}
		sort.Strings(keys)
		cols = append(cols, keys...)
	}

	return cols
}

// WriteCSV materializes records as a CSV file with a header row. Columns are
// the union of record keys per Columns; cells missing from a record are
// empty, string values are written as-is, and any other JSON value is
// rendered with its JSON encoding.
func WriteCSV(path string, records []vgs.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output CSV: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	cols := Columns(records)

	if err := writer.Write(cols); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, record := range records {
		row := make([]string, len(cols))
		for j, col := range cols {
			cell, err := renderCell(record[col])
			if err != nil {
				return fmt.Errorf("failed to render row %d column %s: %w", i, col, err)
			}
			row[j] = cell
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output CSV: %w", err)
	}

	return nil
}

// renderCell converts one JSON-compatible value to its CSV cell text
func renderCell(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}
