// Package wiring models the static connections inside the machine: the
// permutation between the right and left faces of a wheel, and the
// reflector that turns the signal around.
//
// 🚀 What lives here?
//
//   - Contact, LeftContact, RightContact: the 26 connection points of a face.
//     Left and right contacts are distinct types: a right-face index can never be
//     plugged into a left-face slot without an explicit conversion.
//   - Permutation: a bijection from right contacts to left contacts.
//   - Reflector: a fixed-point-free involution built from 13 disjoint pairs.
//   - Stock wirings: the historical wheels I..V and reflectors B and C.
//
// ✨ Guarantees:
//   - Values are immutable and only obtainable through validating factories.
//   - The zero Permutation is the identity; the zero Reflector is Reverse().
//     No zero value is ever an invalid instance.
//   - Failures are reported as errors (ErrNotBijective, ErrInvalidPairing,
//     ErrBadLength, ErrUnknownWiring); a lookup that finds no entry is an
//     invariant violation and panics.
//
// ⚙️ Usage:
//
//	p, err := wiring.PermutationFromString("EKMFLGDQVZNTOWYHXUSPAIBRCJ")
//	r := wiring.Reverse()
//	left := p.ToLeft(rightContact)
//	back := r.Transform(left)
//
// Complexity: ToLeft/Transform are O(1); ToRight scans the table, O(26).
package wiring
