// Package report is the diagnostics sink: word-frequency rankings and
// per-column spell-error counts, emitted as newline-delimited JSON on a
// console stream. Nothing here is persisted.
package report

import (
	"encoding/json"
	"io"
	"sync"
)

// Entry is one ranked word in a frequency report.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Sink receives diagnostic output from rules and the engine.
type Sink interface {
	Frequencies(entries []Entry) error
	ColumnErrors(column string, errors, rows int) error
}

// Console writes one JSON object per line to w.
type Console struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewConsole(w io.Writer) *Console {
	return &Console{enc: json.NewEncoder(w)}
}

func (c *Console) Frequencies(entries []Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range entries {
		if err := c.enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) ColumnErrors(column string, errors, rows int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enc.Encode(struct {
		Column string `json:"column"`
		Errors int    `json:"errors"`
		Rows   int    `json:"rows"`
	}{Column: column, Errors: errors, Rows: rows})
}
