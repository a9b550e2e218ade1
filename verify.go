package ltrbxd

import (
	"context"
	"fmt"
	"slices"
)

// Report classifies a puzzle by repeated bounded searches.
type Report struct {
	// OneWord is true when a single word covers the whole board.
	OneWord bool
	// TwoWord is true when a two-word chain covers the whole board.
	TwoWord bool
	// Optimal is true when a chain using each board letter exactly once
	// (except boundary repeats) exists within five words.
	Optimal bool
	// MatchesReference is true when the one- or two-word solution uses the
	// same word set as the supplied reference solution, in any order.
	MatchesReference bool
}

func (r Report) String() string {
	return fmt.Sprintf("one=%t two=%t optimal=%t match=%t", r.OneWord, r.TwoWord, r.Optimal, r.MatchesReference)
}

// Classify runs three independent searches over the same index, bounded to
// 1, 2 and 5 words. Each search starts from a fresh session; the index is
// shared read-only.
func Classify(ctx context.Context, p *Puzzle, index *WordIndex, reference []string) Report {
	one, okOne := NewSolver(p, index, 1).Solve(ctx)
	two, okTwo := NewSolver(p, index, 2).Solve(ctx)
	five, okFive := NewSolver(p, index, 5).Solve(ctx)

	r := Report{
		OneWord: okOne,
		TwoWord: okTwo,
		Optimal: okFive && five.Letters == p.Letters().Count(),
	}
	if len(reference) > 0 {
		r.MatchesReference = (okOne && sameWordSet(one.Words, reference)) ||
			(okTwo && sameWordSet(two.Words, reference))
	}
	return r
}

func sameWordSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
