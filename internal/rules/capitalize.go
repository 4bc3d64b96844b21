package rules

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"kvizgrad/internal/table"
)

// Capitalize upper-cases the first letter of each sentence and lower-cases
// the rest. Sentences are split on the literal ". " separator.
type Capitalize struct{}

func (Capitalize) Name() string { return "capitalize" }

func (Capitalize) Transform(ctx context.Context, t *table.Table) (*table.Table, error) {
	return applyCells(t, capitalizeSentences)
}

func capitalizeSentences(text string) string {
	parts := strings.Split(capitalize(text), ". ")
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, ". ")
}

// capitalize upper-cases the first rune and lower-cases the remainder.
// Empty input is a no-op.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
