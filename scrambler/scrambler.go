package scrambler

import (
	"fmt"

	"github.com/rshepherd549/enigma/rotor"
	"github.com/rshepherd549/enigma/symbol"
)

// NumRotors is the number of active rotor slots.
const NumRotors = 3

// Scrambler holds the reflector stage and the active rotors.
// rotors[0] is the leftmost (next to the reflector), rotors[NumRotors-1]
// the rightmost (next to the keyboard).
type Scrambler struct {
	turnAbout  rotor.TurnAboutWheel
	rotors     [NumRotors]*rotor.Rotor
	commutator rotor.Commutator
}

// New assembles a scrambler. rotors are ordered left to right and are owned
// by the scrambler from now on.
//
// Errors: ErrRotorCount, ErrNilRotor.
func New(taw rotor.TurnAboutWheel, rotors []*rotor.Rotor) (*Scrambler, error) {
	if len(rotors) != NumRotors {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrRotorCount, len(rotors), NumRotors)
	}
	s := &Scrambler{turnAbout: taw}
	for i, r := range rotors {
		if r == nil {
			return nil, fmt.Errorf("%w: slot %d", ErrNilRotor, i)
		}
		s.rotors[i] = r
	}

	return s, nil
}

// Step advances the rotors once: the rightmost always steps, and each rotor
// that wraps to zero steps its left neighbour. The fold stops at the first
// rotor that does not carry.
func (s *Scrambler) Step() {
	carry := 1
	for i := NumRotors - 1; i >= 0 && carry != 0; i-- {
		carry = s.rotors[i].Step(carry)
	}
}

// Transform runs the signal path for the current rotor state without stepping.
// Complexity: O(NumRotors·26) due to the inverse lookups on the return pass.
func (s *Scrambler) Transform(key symbol.Letter) symbol.Letter {
	in := s.commutator.ToContact(key)

	// right→left through the stack
	l := s.rotors[NumRotors-1].ToLeft(in)
	for i := NumRotors - 2; i >= 0; i-- {
		l = s.rotors[i].ToLeft(l.Contact().Right())
	}

	l = s.turnAbout.Transform(l)

	// left→right back out
	out := s.rotors[0].ToRight(l)
	for i := 1; i < NumRotors; i++ {
		out = s.rotors[i].ToRight(out.Contact().Left())
	}

	return s.commutator.ToLamp(out)
}

// Encipher steps the rotors and then transforms key.
func (s *Scrambler) Encipher(key symbol.Letter) symbol.Letter {
	s.Step()

	return s.Transform(key)
}

// Positions returns the rotor window letters, left to right.
func (s *Scrambler) Positions() [NumRotors]symbol.Letter {
	var out [NumRotors]symbol.Letter
	for i, r := range s.rotors {
		out[i] = r.Position()
	}

	return out
}

// SetPositions rewinds or advances every rotor to pos, left to right.
func (s *Scrambler) SetPositions(pos [NumRotors]symbol.Letter) {
	for i, r := range s.rotors {
		r.Reset(pos[i])
	}
}

// Rotors returns the active rotors, left to right. The rotors are live: stepping
// them changes the scrambler.
func (s *Scrambler) Rotors() [NumRotors]*rotor.Rotor {
	return s.rotors
}

// TurnAbout returns the reflector stage.
func (s *Scrambler) TurnAbout() rotor.TurnAboutWheel {
	return s.turnAbout
}

// Clone returns a scrambler with independent rotor offsets; wheels stay shared.
func (s *Scrambler) Clone() *Scrambler {
	c := &Scrambler{turnAbout: s.turnAbout}
	for i, r := range s.rotors {
		c.rotors[i] = r.Clone()
	}

	return c
}
