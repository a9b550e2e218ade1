package ltrbxd

import (
	"context"
	"slices"
	"testing"

	"github.com/jsmatfess/ltrbxd/internal/dictionary"
)

func TestChainLength(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  int
	}{
		{"empty chain", nil, 0},
		{"single word", []string{"bead"}, 4},
		{"two words share a boundary letter", []string{"bead", "dial"}, 7},
		{"three words share two", []string{"gel", "lech", "hag"}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChainLength(tt.words); got != tt.want {
				t.Errorf("ChainLength(%v) = %d, want %d", tt.words, got, tt.want)
			}
		})
	}
}

func solve(t *testing.T, words []string, maxWords int) (Solution, bool) {
	t.Helper()
	p := mustPuzzle(t)
	idx := BuildIndex(words, p, false)
	return NewSolver(p, idx, maxWords).Solve(context.Background())
}

func TestSolve_TwoWordChain(t *testing.T) {
	sol, ok := solve(t, []string{"bead", "dial", "adbech", "hfiajgkbl"}, 2)
	if !ok {
		t.Fatal("no solution found, want one")
	}
	if want := []string{"adbech", "hfiajgkbl"}; !slices.Equal(sol.Words, want) {
		t.Errorf("Words = %v, want %v", sol.Words, want)
	}
	if sol.Letters != 14 {
		t.Errorf("Letters = %d, want 14", sol.Letters)
	}
	if got := ChainLength(sol.Words); got != sol.Letters {
		t.Errorf("ChainLength(Words) = %d, Letters = %d; must agree", got, sol.Letters)
	}
}

func TestSolve_PartialCoverageIsNotASolution(t *testing.T) {
	// bead -> dial chains, but c,f,g,h,j,k stay uncovered.
	if sol, ok := solve(t, []string{"bead", "dial"}, 2); ok {
		t.Fatalf("got solution %v, want none", sol.Words)
	}
}

func TestSolve_OneWordOptimum(t *testing.T) {
	sol, ok := solve(t, []string{"bead", "adbech", "adbecfgjhkil"}, 1)
	if !ok {
		t.Fatal("no solution found, want the pangram")
	}
	if want := []string{"adbecfgjhkil"}; !slices.Equal(sol.Words, want) {
		t.Errorf("Words = %v, want %v", sol.Words, want)
	}
	if sol.Letters != 12 {
		t.Errorf("Letters = %d, want 12", sol.Letters)
	}
}

func TestSolve_MaxWordsZero(t *testing.T) {
	if sol, ok := solve(t, []string{"adbecfgjhkil"}, 0); ok {
		t.Fatalf("got solution %v with maxWords=0, want none", sol.Words)
	}
}

func TestSolve_EmptyDictionary(t *testing.T) {
	if sol, ok := solve(t, nil, 5); ok {
		t.Fatalf("got solution %v from empty dictionary, want none", sol.Words)
	}
}

func TestSolutions_ImprovingAndHaltingOnOptimum(t *testing.T) {
	p := mustPuzzle(t)
	// Sorted order tries adbech+hfiajgkbl (14 letters) before either pangram.
	words := []string{"adbech", "hfiajgkbl", "adbecfgjhkil", "bdaecfgjhkil"}
	idx := BuildIndex(words, p, false)
	solver := NewSolver(p, idx, 2)

	var got []Solution
	for sol := range solver.Solutions(context.Background()) {
		got = append(got, sol)
	}

	if len(got) != 2 {
		t.Fatalf("got %d solutions %v, want 2", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Letters >= got[i-1].Letters {
			t.Errorf("solution %d (%d letters) does not improve on %d letters", i, got[i].Letters, got[i-1].Letters)
		}
	}
	if got[0].Letters != 14 {
		t.Errorf("first solution has %d letters, want 14", got[0].Letters)
	}
	// The first 12-letter chain halts the search: the second pangram is
	// never reached even though it also covers the board.
	if want := []string{"adbecfgjhkil"}; !slices.Equal(got[1].Words, want) {
		t.Errorf("last solution = %v, want %v", got[1].Words, want)
	}
	for _, sol := range got {
		if ChainLength(sol.Words) != sol.Letters {
			t.Errorf("ChainLength(%v) = %d, Letters = %d; must agree", sol.Words, ChainLength(sol.Words), sol.Letters)
		}
	}
}

func TestSolutions_EarlyBreakStopsSearch(t *testing.T) {
	p := mustPuzzle(t)
	idx := BuildIndex([]string{"adbech", "hfiajgkbl", "adbecfgjhkil"}, p, false)
	solver := NewSolver(p, idx, 2)

	count := 0
	for range solver.Solutions(context.Background()) {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("consumed %d solutions, want 1", count)
	}
}

func TestSolutions_CanceledContext(t *testing.T) {
	p := mustPuzzle(t)
	idx := BuildIndex([]string{"adbecfgjhkil"}, p, false)
	solver := NewSolver(p, idx, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for sol := range solver.Solutions(ctx) {
		t.Fatalf("got solution %v from canceled context", sol.Words)
	}
}

func TestSolverReuse(t *testing.T) {
	// Sequential solves over one shared index start from fresh state.
	p := mustPuzzle(t)
	idx := BuildIndex([]string{"adbech", "hfiajgkbl"}, p, false)

	for i := 0; i < 2; i++ {
		sol, ok := NewSolver(p, idx, 2).Solve(context.Background())
		if !ok || sol.Letters != 14 {
			t.Fatalf("run %d: got (%v, %v), want the 14-letter chain", i, sol, ok)
		}
	}
}

func TestSolve_Testdata(t *testing.T) {
	words, err := dictionary.Load("testdata/words.txt")
	if err != nil {
		t.Fatalf("failed to load words file: %v", err)
	}
	p := mustPuzzle(t)
	idx := BuildIndex(words, p, false)

	sol, ok := NewSolver(p, idx, 2).Solve(context.Background())
	if !ok {
		t.Fatal("no solution found, want the pangram")
	}
	if sol.Letters != 12 {
		t.Errorf("Letters = %d, want 12", sol.Letters)
	}
	if ChainLength(sol.Words) != sol.Letters {
		t.Errorf("ChainLength(%v) = %d, Letters = %d; must agree", sol.Words, ChainLength(sol.Words), sol.Letters)
	}
}

func BenchmarkSolve(b *testing.B) {
	words, err := dictionary.Load("testdata/words.txt")
	if err != nil {
		b.Fatalf("failed to load words file: %v", err)
	}
	p, err := NewPuzzle([]string{"abc", "def", "ghi", "jkl"})
	if err != nil {
		b.Fatalf("NewPuzzle failed: %v", err)
	}
	b.ReportAllocs()

	for b.Loop() {
		idx := BuildIndex(words, p, false)
		if _, ok := NewSolver(p, idx, 2).Solve(context.Background()); !ok {
			b.Fatal("no solution found")
		}
	}
}
