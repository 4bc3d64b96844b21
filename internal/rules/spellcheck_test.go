package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kvizgrad/sink/report"
)

type mapSuggester map[string][]string

func (m mapSuggester) Suggest(text string) []string { return m[text] }

type captureReport struct {
	freqs  [][]report.Entry
	errors []struct {
		column       string
		errors, rows int
	}
}

func (c *captureReport) Frequencies(entries []report.Entry) error {
	c.freqs = append(c.freqs, entries)
	return nil
}

func (c *captureReport) ColumnErrors(column string, errs, rows int) error {
	c.errors = append(c.errors, struct {
		column       string
		errors, rows int
	}{column, errs, rows})
	return nil
}

func TestSpellCheckTakesFirstSuggestion(t *testing.T) {
	sugg := mapSuggester{"beogrd": {"beograd", "beogradu"}}
	rep := &captureReport{}
	tbl := singleColumn(t, "answer", "beogrd")

	out, err := SpellCheck{Suggester: sugg, Reporter: rep}.Transform(context.Background(), tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"beograd"}, columnCells(t, out, "answer"))

	require.Len(t, rep.errors, 1)
	assert.Equal(t, 0, rep.errors[0].errors)
}

func TestSpellCheckFallbackToOriginal(t *testing.T) {
	sugg := mapSuggester{"dobro": {"dobro"}}
	rep := &captureReport{}
	tbl := singleColumn(t, "answer", "dobro", "nepoznato", "")

	out, err := SpellCheck{Suggester: sugg, Reporter: rep}.Transform(context.Background(), tbl)
	require.NoError(t, err)
	// no suggestion means the original value survives
	assert.Equal(t, []string{"dobro", "nepoznato", ""}, columnCells(t, out, "answer"))

	require.Len(t, rep.errors, 1)
	assert.Equal(t, "answer", rep.errors[0].column)
	assert.Equal(t, 2, rep.errors[0].errors)
	assert.Equal(t, 3, rep.errors[0].rows)
}

func TestSpellCheckPerColumnCounts(t *testing.T) {
	sugg := mapSuggester{"da": {"da"}}
	rep := &captureReport{}
	tbl := singleColumn(t, "question", "da")
	tbl2 := singleColumn(t, "answer", "ne")

	_, err := SpellCheck{Suggester: sugg, Reporter: rep}.Transform(context.Background(), tbl)
	require.NoError(t, err)
	_, err = SpellCheck{Suggester: sugg, Reporter: rep}.Transform(context.Background(), tbl2)
	require.NoError(t, err)

	require.Len(t, rep.errors, 2)
	assert.Equal(t, 0, rep.errors[0].errors)
	assert.Equal(t, 1, rep.errors[1].errors)
}
