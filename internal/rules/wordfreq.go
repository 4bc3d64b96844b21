package rules

import (
	"context"
	"sort"
	"strings"

	"kvizgrad/internal/table"
	"kvizgrad/sink/report"
)

// WordFrequency counts whitespace-delimited tokens across every cell of the
// table and emits a ranked report: most frequent first, ties broken by
// discovery order. The table itself passes through unchanged.
type WordFrequency struct {
	// Exclude lists tokens already known to be fixed; they are dropped
	// from the report.
	Exclude  []string
	Reporter report.Sink
}

func (WordFrequency) Name() string { return "wordfreq" }

func (w WordFrequency) Transform(ctx context.Context, t *table.Table) (*table.Table, error) {
	if w.Reporter != nil {
		if err := w.Reporter.Frequencies(w.count(t)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (w WordFrequency) count(t *table.Table) []report.Entry {
	skip := map[string]struct{}{}
	for _, tok := range w.Exclude {
		skip[tok] = struct{}{}
	}

	counts := map[string]int{}
	var order []string
	for _, cell := range t.Cells() {
		for _, tok := range strings.Fields(cell) {
			if _, ok := skip[tok]; ok {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}

	entries := make([]report.Entry, len(order))
	for i, tok := range order {
		entries[i] = report.Entry{Word: tok, Count: counts[tok]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
