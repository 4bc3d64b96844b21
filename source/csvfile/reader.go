// Package csvfile is the table source: it reads a CSV file into the
// in-memory table model. The first record is the header; ragged data rows
// are coerced to the header width with empty cells.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"kvizgrad/internal/table"
	"kvizgrad/internal/telemetry"
)

// Read loads path into a Table. A file without a header row is an error; a
// header-only file yields an empty table.
func Read(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv source: %w", err)
	}
	defer f.Close()

	t, rows, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("csv source %s: %w", path, err)
	}
	telemetry.RowsRead.WithLabelValues(path).Add(float64(rows))
	return t, nil
}

func decode(r io.Reader) (*table.Table, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // width enforced against the header instead

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, errors.New("empty file, no header")
	}
	if err != nil {
		return nil, 0, err
	}

	t := table.New(header...)
	rows := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rows, fmt.Errorf("row %d: %w", rows+1, err)
		}
		t.AppendRow(rec)
		rows++
	}
	return t, rows, nil
}
