// Package rotor provides the moving and fixed wheels of the signal path.
//
//   - Wheel         : the immutable wiring of one rotor, shared read-only by pointer.
//   - Rotor         : a *Wheel plus a private rotational offset; the unit that steps.
//   - TurnAboutWheel: the reflector stage, the single reversal point of the path.
//   - Commutator    : the fixed mapping between keys/lamps and entry/exit contacts.
//
// A Rotor at offset k behaves as its wheel physically turned by k positions:
//
//	ToLeft(r)  = wheel.ToLeft(r + k) - k
//	ToRight(l) = wheel.ToRight(l + k) - k
//
// Step is odometer-style: it adds the incoming carry to the offset and reports
// a carry of 1 when the offset wraps back to zero.
//
// Rotors are not safe for concurrent use; wheels are.
package rotor
