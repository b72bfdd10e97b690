// Package plugboard implements the operator-configured letter swap applied
// before and after the scrambler.
//
// A PlugBoard is built from 0..13 unordered letter pairs; letters outside any
// pair pass straight through. The zero PlugBoard is the identity.
package plugboard

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rshepherd549/enigma/symbol"
)

var (
	// ErrDuplicateLetter indicates a letter used by more than one plug, or a plug
	// connecting a letter to itself.
	ErrDuplicateLetter = errors.New("plugboard: letter plugged more than once")

	// ErrBadPlug indicates a plug token that is not exactly two letters.
	ErrBadPlug = errors.New("plugboard: malformed plug")
)

// MaxPlugs is the most plugs 26 letters can take.
const MaxPlugs = symbol.NumLetters / 2

// Plug is an unordered cable between two letters.
type Plug struct {
	A, B symbol.Letter
}

// String renders the plug as two letters, e.g. "AB".
func (p Plug) String() string { return p.A.String() + p.B.String() }

// PlugBoard is a self-inverse substitution: Transform(Transform(x)) == x.
type PlugBoard struct {
	swap [symbol.NumLetters]int8 // table[i] = i + swap[i] (mod 26)
}

// New builds a plug board from plugs.
//
// Errors: ErrDuplicateLetter when a letter appears twice across all plugs.
// Complexity: O(len(plugs)).
func New(plugs []Plug) (PlugBoard, error) {
	var (
		used [symbol.NumLetters]bool
		pb   PlugBoard
	)
	for i, p := range plugs {
		for _, l := range [2]symbol.Letter{p.A, p.B} {
			if used[l.Index()] {
				return PlugBoard{}, fmt.Errorf("%w: plug %d (%v) reuses %v", ErrDuplicateLetter, i, p, l)
			}
			used[l.Index()] = true
		}
		a, b := p.A.Index(), p.B.Index()
		pb.swap[a] = int8(symbol.Wrap(b-a, symbol.NumLetters))
		pb.swap[b] = int8(symbol.Wrap(a-b, symbol.NumLetters))
	}

	return pb, nil
}

// Parse reads operator notation: two-letter plugs separated by spaces or
// commas, e.g. "AB EL WD". An empty string yields the identity board.
//
// Errors: ErrBadPlug, symbol.ErrInvalidCharacter, ErrDuplicateLetter.
func Parse(s string) (PlugBoard, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	plugs := make([]Plug, 0, len(tokens))
	for i, tok := range tokens {
		if utf8.RuneCountInString(tok) != 2 {
			return PlugBoard{}, fmt.Errorf("%w: token %d %q", ErrBadPlug, i, tok)
		}
		ls, err := symbol.ParseLetters(tok)
		if err != nil {
			return PlugBoard{}, fmt.Errorf("token %d %q: %w", i, tok, err)
		}
		plugs = append(plugs, Plug{A: ls[0], B: ls[1]})
	}

	return New(plugs)
}

// Identity returns a board with no plugs.
func Identity() PlugBoard {
	return PlugBoard{}
}

// Transform returns the letter l is plugged to, or l itself if unplugged.
func (pb PlugBoard) Transform(l symbol.Letter) symbol.Letter {
	return l.Offset(int(pb.swap[l.Index()]))
}

// Plugs returns the configured plugs with A < B, ordered by A.
func (pb PlugBoard) Plugs() []Plug {
	var out []Plug
	for _, l := range symbol.Letters() {
		if m := pb.Transform(l); l.Index() < m.Index() {
			out = append(out, Plug{A: l, B: m})
		}
	}

	return out
}

// String renders the board in operator notation.
func (pb PlugBoard) String() string {
	plugs := pb.Plugs()
	parts := make([]string, len(plugs))
	for i, p := range plugs {
		parts[i] = p.String()
	}

	return strings.Join(parts, " ")
}
