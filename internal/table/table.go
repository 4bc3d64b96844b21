// Package table holds the in-memory tabular model the pipeline operates on:
// an ordered set of named string columns, all row-aligned. Tables are treated
// as values; transforms return a new Table rather than mutating their input.
package table

import (
	"fmt"
)

type Table struct {
	names []string
	cols  [][]string // indexed like names
}

// New builds an empty table with the given column order.
func New(names ...string) *Table {
	t := &Table{names: append([]string{}, names...)}
	t.cols = make([][]string, len(t.names))
	return t
}

func (t *Table) Names() []string { return append([]string{}, t.names...) }

func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

func (t *Table) NumColumns() int { return len(t.names) }

func (t *Table) index(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Column returns the cells of a named column. The returned slice is a copy.
func (t *Table) Column(name string) ([]string, error) {
	i := t.index(name)
	if i < 0 {
		return nil, fmt.Errorf("table: no column %q", name)
	}
	return append([]string{}, t.cols[i]...), nil
}

// AppendRow adds one row. Short rows are padded with empty cells, long rows
// truncated to the column count.
func (t *Table) AppendRow(cells []string) {
	for i := range t.cols {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		t.cols[i] = append(t.cols[i], v)
	}
}

// Row returns row i in column order.
func (t *Table) Row(i int) []string {
	row := make([]string, len(t.cols))
	for c := range t.cols {
		row[c] = t.cols[c][i]
	}
	return row
}

// Select projects the named columns, in the given order, into a new table.
func (t *Table) Select(names ...string) (*Table, error) {
	out := New(names...)
	for i, name := range names {
		src := t.index(name)
		if src < 0 {
			return nil, fmt.Errorf("table: no column %q", name)
		}
		out.cols[i] = append([]string{}, t.cols[src]...)
	}
	return out, nil
}

// Assign returns a copy of the table with one column replaced. The
// replacement must match the row count.
func (t *Table) Assign(name string, cells []string) (*Table, error) {
	i := t.index(name)
	if i < 0 {
		return nil, fmt.Errorf("table: no column %q", name)
	}
	if len(cells) != t.NumRows() {
		return nil, fmt.Errorf("table: column %q: %d cells for %d rows", name, len(cells), t.NumRows())
	}
	out := t.Clone()
	out.cols[i] = append([]string{}, cells...)
	return out, nil
}

// Merge assigns every column of other back into the table at its original
// position. Columns of other that the table lacks are an error.
func (t *Table) Merge(other *Table) (*Table, error) {
	if other.NumRows() != t.NumRows() {
		return nil, fmt.Errorf("table: merge of %d rows into %d rows", other.NumRows(), t.NumRows())
	}
	out := t.Clone()
	for i, name := range other.names {
		dst := out.index(name)
		if dst < 0 {
			return nil, fmt.Errorf("table: no column %q", name)
		}
		out.cols[dst] = append([]string{}, other.cols[i]...)
	}
	return out, nil
}

func (t *Table) Clone() *Table {
	out := New(t.names...)
	for i := range t.cols {
		out.cols[i] = append([]string{}, t.cols[i]...)
	}
	return out
}

// Cells flattens the table row by row, columns in order within each row.
func (t *Table) Cells() []string {
	var out []string
	for r := 0; r < t.NumRows(); r++ {
		for c := range t.cols {
			out = append(out, t.cols[c][r])
		}
	}
	return out
}
