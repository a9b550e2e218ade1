package primitives

import (
	"math/bits"
	"strings"
)

// LetterSet efficiently represents a set of lowercase ASCII letters.
//
// The zero value is the empty set. LetterSet has value semantics: every
// operation returns a new set instead of mutating in place, so callers can
// branch freely during a search without copying.
type LetterSet uint32

// MakeLetterSet returns the set of letters appearing in word.
// Bytes outside 'a'..'z' are ignored.
func MakeLetterSet(word string) LetterSet {
	var s LetterSet
	for i := 0; i < len(word); i++ {
		s = s.Add(word[i])
	}
	return s
}

// Add returns the set with c added. Bytes outside 'a'..'z' are ignored.
func (s LetterSet) Add(c byte) LetterSet {
	if c < 'a' || c > 'z' {
		return s
	}
	return s | 1<<(c-'a')
}

// Contains checks if a letter is in the set.
func (s LetterSet) Contains(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	return s&(1<<(c-'a')) != 0
}

// ContainsAny reports whether any letter of word is in the set.
func (s LetterSet) ContainsAny(word string) bool {
	return s&MakeLetterSet(word) != 0
}

// Union returns the union of both sets.
func (s LetterSet) Union(other LetterSet) LetterSet {
	return s | other
}

// Without returns the set with every letter of word removed.
func (s LetterSet) Without(word string) LetterSet {
	return s &^ MakeLetterSet(word)
}

// Count returns the number of letters in the set.
func (s LetterSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty checks if the set has no letters.
func (s LetterSet) IsEmpty() bool {
	return s == 0
}

func (s LetterSet) String() string {
	var b strings.Builder
	for c := byte('a'); c <= 'z'; c++ {
		if s.Contains(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}
