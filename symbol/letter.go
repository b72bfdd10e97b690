package symbol

import (
	"fmt"
	"strings"
)

// NumLetters is the size of the machine alphabet.
const NumLetters = 26

// letters bounds the uppercase Latin alphabet.
type letters struct{}

func (letters) Base() int  { return 'A' }
func (letters) Count() int { return NumLetters }

// Letter is one of the 26 uppercase letters A..Z. Keys and lamps both use it.
// The zero value is 'A'.
type Letter Bounded[letters]

// NewLetter validates r as an uppercase letter.
//
// Errors: ErrInvalidCharacter (also matching ErrOutOfRange) for anything outside 'A'..'Z'.
func NewLetter(r rune) (Letter, error) {
	s, err := New[letters](int(r))
	if err != nil {
		return Letter{}, fmt.Errorf("%w %q: %w", ErrInvalidCharacter, r, err)
	}

	return Letter(s), nil
}

// LetterFromIndex returns the letter at alphabet position i (0 ⇒ 'A').
func LetterFromIndex(i int) (Letter, error) {
	s, err := FromIndex[letters](i)
	if err != nil {
		return Letter{}, err
	}

	return Letter(s), nil
}

// MustLetter is NewLetter for compile-time constants; it panics on invalid input.
func MustLetter(r rune) Letter {
	l, err := NewLetter(r)
	if err != nil {
		panic(err)
	}

	return l
}

// Letters returns the whole alphabet in order A..Z.
func Letters() [NumLetters]Letter {
	var out [NumLetters]Letter
	for i := range out {
		out[i] = Letter{index: i}
	}

	return out
}

func (l Letter) bounded() Bounded[letters] { return Bounded[letters](l) }

// Index returns the alphabet position of l (A ⇒ 0, Z ⇒ 25).
func (l Letter) Index() int { return l.bounded().Index() }

// Rune returns l as a character.
func (l Letter) Rune() rune { return rune(l.bounded().Value()) }

// Offset returns the letter delta positions after l, wrapping Z→A.
func (l Letter) Offset(delta int) Letter { return Letter(l.bounded().Offset(delta)) }

// String implements fmt.Stringer.
func (l Letter) String() string { return string(l.Rune()) }

// ParseLetters validates every rune of s and returns them as letters.
// The call is all-or-nothing: on the first invalid rune nothing is returned.
//
// Errors: ErrInvalidCharacter, wrapped with the offending position.
// Complexity: O(len(s)).
func ParseLetters(s string) ([]Letter, error) {
	out := make([]Letter, 0, len(s))
	var pos int
	for _, r := range s {
		l, err := NewLetter(r)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", pos, err)
		}
		out = append(out, l)
		pos++
	}

	return out, nil
}

// FormatLetters renders letters as a string.
func FormatLetters(ls []Letter) string {
	var sb strings.Builder
	sb.Grow(len(ls))
	for _, l := range ls {
		sb.WriteRune(l.Rune())
	}

	return sb.String()
}
