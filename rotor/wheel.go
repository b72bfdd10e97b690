package rotor

import (
	"fmt"

	"github.com/rshepherd549/enigma/wiring"
)

// Wheel is the static wiring of one rotor, independent of its rotation.
// It is immutable and meant to be shared by pointer between rotors and machines.
type Wheel struct {
	name   string
	wiring wiring.Permutation
}

// NewWheel wraps a validated permutation. name is informational only.
func NewWheel(name string, p wiring.Permutation) *Wheel {
	return &Wheel{name: name, wiring: p}
}

// StockWheel returns one of the historical wheels "I".."V".
//
// Errors: wiring.ErrUnknownWiring.
func StockWheel(name string) (*Wheel, error) {
	p, err := wiring.StockWheel(name)
	if err != nil {
		return nil, err
	}

	return NewWheel(name, p), nil
}

// Name returns the label given at construction.
func (w *Wheel) Name() string { return w.name }

// Permutation returns the wheel's wiring.
func (w *Wheel) Permutation() wiring.Permutation { return w.wiring }

// ToLeft follows the static wiring right→left.
func (w *Wheel) ToLeft(r wiring.RightContact) wiring.LeftContact { return w.wiring.ToLeft(r) }

// ToRight follows the static wiring left→right.
func (w *Wheel) ToRight(l wiring.LeftContact) wiring.RightContact { return w.wiring.ToRight(l) }

// String implements fmt.Stringer.
func (w *Wheel) String() string {
	if w.name == "" {
		return w.wiring.String()
	}

	return fmt.Sprintf("%s(%s)", w.name, w.wiring)
}
