package spell

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const defaultMaxDistance = 2

// WordList is a Suggester backed by a flat dictionary file, one word per
// line, # comments and blank lines skipped. Candidates are ranked by edit
// distance, ties broken by dictionary order, so suggestions are
// deterministic across runs.
type WordList struct {
	words   []string
	index   map[string]struct{}
	maxDist int
}

// LoadWordList reads a dictionary file. An empty path yields an empty list,
// which never suggests anything.
func LoadWordList(path string) (*WordList, error) {
	wl := &WordList{index: map[string]struct{}{}, maxDist: defaultMaxDistance}
	if path == "" {
		return wl, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("spell: open word list: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := wl.index[line]; ok {
			continue
		}
		wl.index[line] = struct{}{}
		wl.words = append(wl.words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("spell: read word list: %w", err)
	}
	return wl, nil
}

// SetMaxDistance overrides the edit-distance cutoff. Values below 1 keep
// the default.
func (w *WordList) SetMaxDistance(d int) {
	if d >= 1 {
		w.maxDist = d
	}
}

func (w *WordList) Len() int { return len(w.words) }

// Suggest returns dictionary words within the distance cutoff, closest
// first. A word already in the dictionary suggests itself.
func (w *WordList) Suggest(text string) []string {
	if text == "" {
		return nil
	}
	if _, ok := w.index[text]; ok {
		return []string{text}
	}

	type candidate struct {
		word string
		dist int
		pos  int
	}
	var found []candidate
	for i, word := range w.words {
		if d := levenshtein.ComputeDistance(text, word); d <= w.maxDist {
			found = append(found, candidate{word: word, dist: d, pos: i})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].pos < found[j].pos
	})

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.word
	}
	return out
}
