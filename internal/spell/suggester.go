// Package spell provides the dictionary-backed suggestion source queried by
// the spell-correction rule. The pipeline only sees the Suggester interface;
// the word-list implementation is one driver behind it.
package spell

// Suggester returns correction candidates for a piece of text, best first.
// An empty result means the source has nothing to offer; the caller decides
// what that means.
type Suggester interface {
	Suggest(text string) []string
}
