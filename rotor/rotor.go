package rotor

import (
	"github.com/rshepherd549/enigma/symbol"
	"github.com/rshepherd549/enigma/wiring"
)

// Rotor is a Wheel at a rotational offset in [0, 26).
//
// The wheel is shared read-only; the offset is private to this rotor and is
// mutated only by Step and Reset.
type Rotor struct {
	wheel  *Wheel
	offset int
}

// New mounts wheel with its offset set from the ring setting (A ⇒ 0, Z ⇒ 25).
//
// Errors: ErrNilWheel.
func New(wheel *Wheel, ring symbol.Letter) (*Rotor, error) {
	if wheel == nil {
		return nil, ErrNilWheel
	}

	return &Rotor{wheel: wheel, offset: ring.Index()}, nil
}

// Wheel returns the mounted wheel.
func (r *Rotor) Wheel() *Wheel { return r.wheel }

// Offset returns the current rotation, 0..25.
func (r *Rotor) Offset() int { return r.offset }

// Position returns the current rotation as the letter shown in the window.
func (r *Rotor) Position() symbol.Letter {
	return symbol.Letter{}.Offset(r.offset)
}

// Reset sets the rotation to pos.
func (r *Rotor) Reset(pos symbol.Letter) { r.offset = pos.Index() }

// ToLeft passes a signal right→left through the rotated wiring:
// shift in by +offset, apply the wheel, shift out by -offset.
// Complexity: O(1).
func (r *Rotor) ToLeft(in wiring.RightContact) wiring.LeftContact {
	return r.wheel.ToLeft(in.Shift(r.offset)).Shift(-r.offset)
}

// ToRight passes a signal left→right; the mirror of ToLeft.
// Complexity: O(26).
func (r *Rotor) ToRight(in wiring.LeftContact) wiring.RightContact {
	return r.wheel.ToRight(in.Shift(r.offset)).Shift(-r.offset)
}

// Step advances the rotor by carryIn positions and returns the carry for the
// next rotor: 1 when the rotor moved and landed on offset 0, otherwise 0.
// A zero carryIn leaves the rotor untouched and never carries.
func (r *Rotor) Step(carryIn int) int {
	if carryIn < 0 {
		panic(panicNegativeCarry)
	}
	if carryIn == 0 {
		return 0
	}
	r.offset = symbol.Wrap(r.offset+carryIn, wiring.NumContacts)
	if r.offset == 0 {
		return 1
	}

	return 0
}

// Clone returns an independent rotor on the same wheel at the same offset.
func (r *Rotor) Clone() *Rotor {
	return &Rotor{wheel: r.wheel, offset: r.offset}
}
