package wiring

import (
	"fmt"
	"strings"

	"github.com/rshepherd549/enigma/symbol"
)

// NumPairs is the number of disjoint pairs that make up a reflector.
const NumPairs = NumContacts / 2

// Pair is an unordered connection between two left contacts.
type Pair struct {
	A, B LeftContact
}

// NewPair validates two raw contact numbers. It does not reject A == B;
// NewReflector does, with the pair's position in the list.
func NewPair(a, b int) (Pair, error) {
	la, err := NewLeftContact(a)
	if err != nil {
		return Pair{}, err
	}
	lb, err := NewLeftContact(b)
	if err != nil {
		return Pair{}, err
	}

	return Pair{A: la, B: lb}, nil
}

// Reflector is a fixed-point-free involution over the left contacts:
// Transform(Transform(x)) == x and Transform(x) != x for every x.
//
// Entries are stored as displacements from Reverse, so the zero Reflector
// is Reverse() and is valid.
type Reflector struct {
	twist [NumContacts]int8 // to(x) = 25 - x + twist[x] (mod 26)
}

// NewReflector builds a reflector from 13 disjoint pairs.
//
// Implementation:
//   - Stage 1: reject self-pairs and contacts used by more than one pair.
//   - Stage 2: write both directions of each pair into the table. Thirteen
//     disjoint pairs of distinct contacts cover all 26 contacts.
//   - Stage 3: re-check the involution and the absence of fixed points on
//     the finished table.
//
// Errors: ErrInvalidPairing.
// Complexity: O(26).
func NewReflector(pairs [NumPairs]Pair) (Reflector, error) {
	var (
		used  [NumContacts]bool
		table [NumContacts]int
	)
	for i, p := range pairs {
		a, b := p.A.Index(), p.B.Index()
		if a == b {
			return Reflector{}, fmt.Errorf("%w: pair %d connects %v to itself", ErrInvalidPairing, i, p.A)
		}
		for _, c := range [2]int{a, b} {
			if used[c] {
				return Reflector{}, fmt.Errorf("%w: pair %d reuses L%d", ErrInvalidPairing, i, c)
			}
			used[c] = true
		}
		table[a], table[b] = b, a
	}

	var ref Reflector
	for x, y := range table {
		ref.twist[x] = int8(symbol.Wrap(y-(NumContacts-1-x), NumContacts))
	}
	if err := ref.verify(); err != nil {
		return Reflector{}, err
	}

	return ref, nil
}

// ReflectorFromInts builds a reflector from 13 raw pairs of contact numbers.
//
// Errors: ErrBadLength, symbol.ErrOutOfRange, ErrInvalidPairing.
func ReflectorFromInts(raw [][2]int) (Reflector, error) {
	if len(raw) != NumPairs {
		return Reflector{}, fmt.Errorf("%w: got %d pairs, want %d", ErrBadLength, len(raw), NumPairs)
	}
	var pairs [NumPairs]Pair
	for i, r := range raw {
		p, err := NewPair(r[0], r[1])
		if err != nil {
			return Reflector{}, fmt.Errorf("pair %d: %w", i, err)
		}
		pairs[i] = p
	}

	return NewReflector(pairs)
}

// ReflectorFromString builds a reflector from its wiring notation, e.g.
// "YRUHQSLDPXNGOKMIEBFZCWVJAT" for reflector B. The string must describe an
// involution without fixed points.
//
// Errors: ErrBadLength, symbol.ErrInvalidCharacter, ErrNotBijective, ErrInvalidPairing.
func ReflectorFromString(s string) (Reflector, error) {
	p, err := PermutationFromString(s)
	if err != nil {
		return Reflector{}, err
	}
	table := p.Table()
	var (
		pairs [NumPairs]Pair
		n     int
	)
	for x, y := range table {
		if table[y] != x || x == y {
			return Reflector{}, fmt.Errorf("%w: L%d maps to L%d which maps to L%d", ErrInvalidPairing, x, y, table[y])
		}
		if x < y {
			pairs[n] = Pair{A: contactAt(x).Left(), B: contactAt(y).Left()}
			n++
		}
	}

	return NewReflector(pairs)
}

// Reverse returns the canonical reflector pairing contact i with 25-i.
func Reverse() Reflector {
	return Reflector{}
}

// Transform performs the single reflecting lookup.
// Complexity: O(1).
func (r Reflector) Transform(l LeftContact) LeftContact {
	x := l.Index()

	return contactAt(NumContacts - 1 - x + int(r.twist[x])).Left()
}

// Pairs returns the 13 pairs, each with A < B, ordered by A.
func (r Reflector) Pairs() [NumPairs]Pair {
	var (
		out [NumPairs]Pair
		n   int
	)
	for x := 0; x < NumContacts; x++ {
		l := contactAt(x).Left()
		if y := r.Transform(l); x < y.Index() {
			out[n] = Pair{A: l, B: y}
			n++
		}
	}

	return out
}

// Permutation returns the reflector as a plain right→left permutation.
func (r Reflector) Permutation() Permutation {
	var table [NumContacts]LeftContact
	for x := range table {
		table[x] = r.Transform(contactAt(x).Left())
	}
	p, err := NewPermutation(table)
	if err != nil {
		panic(err) // an involution is a bijection
	}

	return p
}

// String renders r in wiring notation.
func (r Reflector) String() string {
	var sb strings.Builder
	sb.Grow(NumContacts)
	for x := 0; x < NumContacts; x++ {
		sb.WriteRune(r.Transform(contactAt(x).Left()).Contact().Letter().Rune())
	}

	return sb.String()
}

// verify checks the involution and fixed-point invariants on the finished table.
func (r Reflector) verify() error {
	for x := 0; x < NumContacts; x++ {
		l := contactAt(x).Left()
		y := r.Transform(l)
		if y == l {
			return fmt.Errorf("%w: %v is a fixed point", ErrInvalidPairing, l)
		}
		if r.Transform(y) != l {
			return fmt.Errorf("%w: %v does not reflect back to itself", ErrInvalidPairing, l)
		}
	}

	return nil
}
