package rules

import (
	"context"
	"strings"

	"kvizgrad/internal/table"
)

// Pair is one literal substitution.
type Pair struct {
	Find    string
	Replace string
}

// ReplacementMap is an ordered substitution list. Order matters: each pair
// runs over the previous pair's output, so an early rule can create the
// substring a later rule matches.
type ReplacementMap []Pair

// NewReplacementMap builds a ReplacementMap from find/replace pairs with
// last-write-wins semantics for duplicate find strings, keeping the
// position of the first occurrence.
func NewReplacementMap(pairs ...Pair) ReplacementMap {
	var out ReplacementMap
	seen := map[string]int{}
	for _, p := range pairs {
		if i, ok := seen[p.Find]; ok {
			out[i].Replace = p.Replace
			continue
		}
		seen[p.Find] = len(out)
		out = append(out, p)
	}
	return out
}

// Values returns the replacement sides, in map order.
func (m ReplacementMap) Values() []string {
	out := make([]string, len(m))
	for i, p := range m {
		out[i] = p.Replace
	}
	return out
}

// Replace applies an ordered literal substitution list to every cell.
// Case-sensitive, all occurrences per pass. An empty map is the identity.
type Replace struct {
	Pairs ReplacementMap
}

func (Replace) Name() string { return "replace" }

func (r Replace) Transform(ctx context.Context, t *table.Table) (*table.Table, error) {
	return applyCells(t, r.apply)
}

func (r Replace) apply(text string) string {
	for _, p := range r.Pairs {
		text = strings.ReplaceAll(text, p.Find, p.Replace)
	}
	return text
}
