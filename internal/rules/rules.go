// Package rules holds the concrete table transformers: transliteration,
// literal replacement, capitalization, spell correction with fallback, and
// word-frequency reporting. Each rule is a pure cell-wise map except the
// frequency reporter, which passes the table through and reports on the
// side.
package rules

import (
	"kvizgrad/internal/table"
)

// applyCells maps fn over every cell of every column, preserving shape.
func applyCells(t *table.Table, fn func(string) string) (*table.Table, error) {
	out := t
	for _, name := range t.Names() {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		for i, cell := range col {
			col[i] = fn(cell)
		}
		out, err = out.Assign(name, col)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
