package rotor

import (
	"github.com/rshepherd549/enigma/symbol"
	"github.com/rshepherd549/enigma/wiring"
)

// TurnAboutWheel is the reflector stage at the left end of the rotor stack.
type TurnAboutWheel struct {
	reflector wiring.Reflector
}

// NewTurnAboutWheel wraps a validated reflector.
func NewTurnAboutWheel(r wiring.Reflector) TurnAboutWheel {
	return TurnAboutWheel{reflector: r}
}

// Reflector returns the wrapped reflector.
func (t TurnAboutWheel) Reflector() wiring.Reflector { return t.reflector }

// Transform reflects a signal arriving at the left face of the leftmost rotor.
func (t TurnAboutWheel) Transform(in wiring.LeftContact) wiring.LeftContact {
	return t.reflector.Transform(in)
}

// Commutator maps keys onto the entry contacts of the rightmost rotor and its
// exit contacts back onto lamps. The mapping is the identity on indices.
type Commutator struct{}

// ToContact returns the entry contact for a pressed key.
func (Commutator) ToContact(key symbol.Letter) wiring.RightContact {
	return wiring.ContactFromLetter(key).Right()
}

// ToLamp returns the lamp lit by a signal leaving at contact out.
func (Commutator) ToLamp(out wiring.RightContact) symbol.Letter {
	return out.Contact().Letter()
}
