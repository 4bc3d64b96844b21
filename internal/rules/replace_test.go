package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceEmptyMapIsIdentity(t *testing.T) {
	tbl := singleColumn(t, "question", "ништа се не мења", "not even this")
	out, err := Replace{}.Transform(context.Background(), tbl)
	require.NoError(t, err)
	assert.Equal(t, columnCells(t, tbl, "question"), columnCells(t, out, "question"))
}

func TestReplaceSequentialPasses(t *testing.T) {
	// earlier pairs may create the substring a later pair matches
	m := NewReplacementMap(
		Pair{"ab", "bc"},
		Pair{"bc", "x"},
	)
	assert.Equal(t, "x", Replace{Pairs: m}.apply("ab"))
}

func TestReplaceAllOccurrencesCaseSensitive(t *testing.T) {
	m := NewReplacementMap(Pair{"madrid", "Madrid"})
	r := Replace{Pairs: m}
	assert.Equal(t, "Madrid i opet Madrid", r.apply("madrid i opet madrid"))
	assert.Equal(t, "MADRID", r.apply("MADRID"))
}

func TestReplacementMapDuplicateKeysLastWriteWins(t *testing.T) {
	m := NewReplacementMap(
		Pair{"a", "1"},
		Pair{"b", "2"},
		Pair{"a", "3"},
	)
	require.Len(t, m, 2)
	assert.Equal(t, Pair{"a", "3"}, m[0])
	assert.Equal(t, Pair{"b", "2"}, m[1])
	assert.Equal(t, []string{"3", "2"}, m.Values())
}

func TestCorrectionsTableSanity(t *testing.T) {
	// duplicated source entries collapse, so every find string is unique
	seen := map[string]bool{}
	for _, p := range Corrections {
		assert.False(t, seen[p.Find], "duplicate find %q", p.Find)
		seen[p.Find] = true
	}
	r := Replace{Pairs: Corrections}
	assert.Equal(t, "UEFA liga šampiona?", r.apply("uefa liga šampiona ?"))
}
