package scrambler

import "errors"

var (
	// ErrRotorCount indicates a rotor stack of the wrong size.
	ErrRotorCount = errors.New("scrambler: wrong number of rotors")

	// ErrNilRotor indicates a missing rotor in the stack.
	ErrNilRotor = errors.New("scrambler: rotor is nil")
)
