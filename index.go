package ltrbxd

import (
	"slices"
	"strings"
)

// WordIndex is the read-only lookup structure a Solver searches over.
//
// Valid holds every playable word sorted by length, then alphabetically.
// ByStart maps a first letter to the sub-sequence of Valid starting with it,
// in the same order. Building the index is the only place words are
// reordered; the search never mutates it, so one index can back any number
// of sequential solves.
type WordIndex struct {
	Valid   []string
	ByStart map[byte][]string
}

// BuildIndex filters words through the puzzle rules, sorts the survivors by
// length then alphabetically, and groups them by starting letter. Duplicates
// are dropped.
//
// skipValidation trusts the caller's list as already playable. Use it for
// pre-filtered sources such as the official puzzle dictionary.
func BuildIndex(words []string, p *Puzzle, skipValidation bool) *WordIndex {
	valid := make([]string, 0, len(words))
	if skipValidation {
		valid = append(valid, words...)
	} else {
		for _, w := range words {
			if p.ValidWord(w) {
				valid = append(valid, w)
			}
		}
	}

	// Shortest first: the search wants minimum total letters, and the tie
	// break keeps output reproducible.
	slices.SortFunc(valid, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	valid = slices.Compact(valid)

	byStart := make(map[byte][]string)
	for _, w := range valid {
		byStart[w[0]] = append(byStart[w[0]], w)
	}
	return &WordIndex{Valid: valid, ByStart: byStart}
}
