package ltrbxd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsmatfess/ltrbxd/pkg/primitives"
)

const (
	// NumSides is the number of edges on the board.
	NumSides = 4
	// SideLength is the number of letters on each edge.
	SideLength = 3
	// MinWordLength is the shortest word the puzzle accepts.
	MinWordLength = 3
)

// ErrInvalidSide reports a puzzle definition whose sides are not four
// strings of exactly three letters each.
var ErrInvalidSide = errors.New("invalid puzzle side")

// Puzzle is an immutable Letter Boxed board: four sides of three letters.
//
// Letters are normalized to lowercase on construction. The board assumes no
// letter appears on more than one side; if one does, the last side wins for
// the adjacency rule.
type Puzzle struct {
	sides   [NumSides]string
	letters primitives.LetterSet
	sideOf  [26]int8
}

// NewPuzzle builds a board from the four side strings. It returns
// ErrInvalidSide if there are not exactly four sides, or a side is not
// exactly three letters a-z.
func NewPuzzle(sides []string) (*Puzzle, error) {
	if len(sides) != NumSides {
		return nil, fmt.Errorf("%w: want %d sides, got %d", ErrInvalidSide, NumSides, len(sides))
	}

	p := &Puzzle{}
	for i := range p.sideOf {
		p.sideOf[i] = -1
	}

	for i, side := range sides {
		side = strings.ToLower(strings.TrimSpace(side))
		if len(side) != SideLength {
			return nil, fmt.Errorf("%w: %q must be exactly %d letters", ErrInvalidSide, side, SideLength)
		}
		for j := 0; j < len(side); j++ {
			c := side[j]
			if c < 'a' || c > 'z' {
				return nil, fmt.Errorf("%w: %q contains non-letter %q", ErrInvalidSide, side, c)
			}
			p.sideOf[c-'a'] = int8(i)
		}
		p.sides[i] = side
		p.letters = p.letters.Union(primitives.MakeLetterSet(side))
	}
	return p, nil
}

// Sides returns the normalized side strings.
func (p *Puzzle) Sides() []string {
	sides := make([]string, NumSides)
	copy(sides, p.sides[:])
	return sides
}

// Letters returns the set of distinct letters on the board.
func (p *Puzzle) Letters() primitives.LetterSet {
	return p.letters
}

// ValidWord reports whether word is playable on this board: at least three
// letters, every letter on the board, and no two consecutive letters on the
// same side. The word must already be lowercase.
func (p *Puzzle) ValidWord(word string) bool {
	if len(word) < MinWordLength {
		return false
	}
	prev := int8(-1)
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
		side := p.sideOf[c-'a']
		if side < 0 || side == prev {
			return false
		}
		prev = side
	}
	return true
}
