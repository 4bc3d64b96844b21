package rules

import (
	"context"

	"kvizgrad/internal/logging"
	"kvizgrad/internal/spell"
	"kvizgrad/internal/table"
	"kvizgrad/internal/telemetry"
	"kvizgrad/sink/report"
)

// errSentinel marks a cell whose suggestion lookup came back empty. It only
// exists between the per-cell pass and the per-column fallback pass.
const errSentinel = "__ERROR__"

// SpellCheck replaces each cell with the first suggestion from the backing
// Suggester. Cells without a suggestion fall back to their original value
// once the column is done; the error count per column is reported, never
// propagated.
type SpellCheck struct {
	Suggester spell.Suggester
	Reporter  report.Sink
}

func (SpellCheck) Name() string { return "spellcheck" }

func (s SpellCheck) Transform(ctx context.Context, t *table.Table) (*table.Table, error) {
	out := t
	for _, name := range t.Names() {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}

		corrected := make([]string, len(col))
		for i, cell := range col {
			if sugg := s.Suggester.Suggest(cell); len(sugg) > 0 {
				corrected[i] = sugg[0]
			} else {
				corrected[i] = errSentinel
			}
		}

		errors := 0
		for i, cell := range corrected {
			if cell == errSentinel {
				corrected[i] = col[i]
				errors++
			}
		}
		logging.L().Info("spellcheck column done", "column", name, "errors", errors, "rows", len(col))
		telemetry.SpellFallbacks.WithLabelValues(name).Add(float64(errors))
		if s.Reporter != nil {
			if err := s.Reporter.ColumnErrors(name, errors, len(col)); err != nil {
				return nil, err
			}
		}

		out, err = out.Assign(name, corrected)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
