package wiring

import (
	"fmt"
	"strings"

	"github.com/rshepherd549/enigma/symbol"
)

// Permutation is a bijection between the 26 right contacts and the 26 left
// contacts of a face pair: rightToLeft[r] = l.
//
// Entries are stored as displacements from the identity so that the zero
// Permutation is the identity rather than an invalid table.
type Permutation struct {
	shift [NumContacts]int8 // rightToLeft[r] = r + shift[r] (mod 26)
}

// NewPermutation validates a right→left table.
//
// Implementation:
//   - Stage 1: mark every left contact seen; a second sighting fails.
//   - Stage 2: store each entry as its displacement from the identity.
//
// Errors: ErrNotBijective when any left contact repeats.
// Complexity: O(26).
func NewPermutation(rightToLeft [NumContacts]LeftContact) (Permutation, error) {
	var (
		seen [NumContacts]bool
		p    Permutation
	)
	for r, l := range rightToLeft {
		if seen[l.Index()] {
			return Permutation{}, fmt.Errorf("%w: %v appears twice (second at R%d)", ErrNotBijective, l, r)
		}
		seen[l.Index()] = true
		p.shift[r] = int8(symbol.Wrap(l.Index()-r, NumContacts))
	}

	return p, nil
}

// PermutationFromInts builds a permutation from 26 raw contact numbers,
// raw[r] being the left contact wired to right contact r.
//
// Errors: ErrBadLength, symbol.ErrOutOfRange, ErrNotBijective.
func PermutationFromInts(raw []int) (Permutation, error) {
	if len(raw) != NumContacts {
		return Permutation{}, fmt.Errorf("%w: got %d contacts, want %d", ErrBadLength, len(raw), NumContacts)
	}
	var table [NumContacts]LeftContact
	for r, v := range raw {
		l, err := NewLeftContact(v)
		if err != nil {
			return Permutation{}, fmt.Errorf("entry %d: %w", r, err)
		}
		table[r] = l
	}

	return NewPermutation(table)
}

// PermutationFromString builds a permutation from the conventional wiring
// notation: the i-th letter of s is where the i-th right contact is wired.
//
// Example: "EKMFLGDQVZNTOWYHXUSPAIBRCJ" (wheel I) wires R0→L4, R1→L10, ...
//
// Errors: ErrBadLength, symbol.ErrInvalidCharacter, ErrNotBijective.
func PermutationFromString(s string) (Permutation, error) {
	letters, err := symbol.ParseLetters(s)
	if err != nil {
		return Permutation{}, err
	}
	raw := make([]int, len(letters))
	for i, l := range letters {
		raw[i] = l.Index()
	}

	return PermutationFromInts(raw)
}

// Identity returns the straight-through wiring r→r. It never fails.
func Identity() Permutation {
	return Permutation{}
}

// ToLeft follows the wire from right contact r to its left contact.
// Complexity: O(1).
func (p Permutation) ToLeft(r RightContact) LeftContact {
	return r.Contact().Shift(int(p.shift[r.Index()])).Left()
}

// ToRight follows the wire backwards from left contact l.
// The table is scanned for the matching entry.
// Complexity: O(26).
func (p Permutation) ToRight(l LeftContact) RightContact {
	for r := 0; r < NumContacts; r++ {
		if symbol.Wrap(r+int(p.shift[r]), NumContacts) == l.Index() {
			return contactAt(r).Right()
		}
	}
	panic(panicMissingLeft)
}

// Table returns the right→left table as raw contact numbers.
func (p Permutation) Table() [NumContacts]int {
	var out [NumContacts]int
	for r := range out {
		out[r] = symbol.Wrap(r+int(p.shift[r]), NumContacts)
	}

	return out
}

// String renders p in wiring notation, e.g. "ABCD..." for the identity.
func (p Permutation) String() string {
	var sb strings.Builder
	sb.Grow(NumContacts)
	for _, l := range p.Table() {
		sb.WriteRune(contactAt(l).Letter().Rune())
	}

	return sb.String()
}
