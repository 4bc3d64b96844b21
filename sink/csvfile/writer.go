// Package csvfile is the table sink: it writes a Table back out as a CSV
// file, header first, into a directory created on demand.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"kvizgrad/internal/table"
	"kvizgrad/internal/telemetry"
)

// Write stores t as dir/name, creating dir if absent.
func Write(dir, name string, t *table.Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("csv sink: %w", err)
	}
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv sink: %w", err)
	}

	w := csv.NewWriter(f)
	if err := encode(w, t); err != nil {
		f.Close()
		return fmt.Errorf("csv sink %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csv sink %s: %w", path, err)
	}
	telemetry.RowsWritten.WithLabelValues(path).Add(float64(t.NumRows()))
	return nil
}

func encode(w *csv.Writer, t *table.Table) error {
	if err := w.Write(t.Names()); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	for i := 0; i < t.NumRows(); i++ {
		if err := w.Write(t.Row(i)); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}
