package ltrbxd

import (
	"context"
	"iter"
	"math"

	"github.com/jsmatfess/ltrbxd/pkg/primitives"
)

// Solution is a chained word sequence covering every board letter, together
// with its total letter count. The boundary letter shared by consecutive
// words is counted once, not twice.
type Solution struct {
	Words   []string
	Letters int
}

// ChainLength returns the deduplicated letter count of a word chain: the sum
// of the word lengths minus one per boundary. The empty chain has length 0.
func ChainLength(words []string) int {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return total - len(words) + 1
}

// Solver finds minimum-letter word chains for one puzzle over one index.
//
// A Solver is stateless between calls: every Solutions or Solve invocation
// owns a fresh search session, so a single Solver can be reused for
// sequential searches (as the verifier does) but its results must not be
// consumed concurrently.
type Solver struct {
	puzzle   *Puzzle
	index    *WordIndex
	maxWords int
}

// NewSolver creates a solver bounded to chains of at most maxWords words.
func NewSolver(p *Puzzle, index *WordIndex, maxWords int) *Solver {
	return &Solver{puzzle: p, index: index, maxWords: maxWords}
}

// session is the mutable state of one in-flight search.
type session struct {
	best         int
	optimalFound bool
	last         []string
}

// Solutions returns the stream of improving solutions found by a
// depth-first branch-and-bound search. Each yielded solution is strictly
// shorter than the previous one; the last is the best within the word
// bound. Candidates are explored shortest-first, then alphabetically, so
// the stream is deterministic for identical inputs.
//
// The search stops as soon as a chain whose length equals the board's
// distinct letter count is found, since no chain can do better. Cancelling
// ctx stops the stream early.
func (s *Solver) Solutions(ctx context.Context) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		sess := &session{best: math.MaxInt}
		s.search(ctx, nil, s.puzzle.Letters(), 0, sess, yield)
	}
}

// Solve runs the search to completion and returns the best solution found,
// or ok=false if no chain covers the board within the word bound.
func (s *Solver) Solve(ctx context.Context) (Solution, bool) {
	var best Solution
	found := false
	for sol := range s.Solutions(ctx) {
		best = sol
		found = true
	}
	return best, found
}

// search returns false once yield has stopped the iteration.
func (s *Solver) search(ctx context.Context, chosen []string, remaining primitives.LetterSet, depth int, sess *session, yield func(Solution) bool) bool {
	if sess.optimalFound || depth >= s.maxWords {
		return true
	}
	if ctx.Err() != nil {
		return false
	}

	current := ChainLength(chosen)
	if current > sess.best {
		return true
	}

	for _, word := range s.candidates(chosen, remaining, sess.best, current) {
		if sess.optimalFound {
			break
		}

		next := make([]string, len(chosen)+1)
		copy(next, chosen)
		next[len(chosen)] = word

		newRemaining := remaining.Without(word)
		if newRemaining.IsEmpty() {
			length := ChainLength(next)
			if length < sess.best {
				sess.best = length
				sess.last = next
				if !yield(Solution{Words: next, Letters: length}) {
					return false
				}
				if length == s.puzzle.Letters().Count() {
					sess.optimalFound = true
				}
				// A completing word is never extended further, even though a
				// longer chain through the same prefix could in principle
				// carry fewer extra letters.
				continue
			}
		}
		if !s.search(ctx, next, newRemaining, depth+1, sess, yield) {
			return false
		}
	}
	return true
}

// candidates returns the words worth trying at this position: chaining from
// the previous word's last letter (or any word when the chain is empty),
// touching at least one uncovered letter, and short enough to still beat the
// best known chain. Pool order is preserved.
func (s *Solver) candidates(chosen []string, remaining primitives.LetterSet, best, current int) []string {
	pool := s.index.Valid
	if len(chosen) > 0 {
		last := chosen[len(chosen)-1]
		pool = s.index.ByStart[last[len(last)-1]]
	}

	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if !remaining.ContainsAny(w) {
			continue
		}
		if len(w) > best-current {
			continue
		}
		out = append(out, w)
	}
	return out
}
