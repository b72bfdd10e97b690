package wiring

import "errors"

var (
	// ErrNotBijective indicates a wiring table with a repeated left contact.
	ErrNotBijective = errors.New("wiring: mapping is not a bijection")

	// ErrInvalidPairing indicates reflector pairs that overlap, pair a contact with
	// itself, or do not form a fixed-point-free involution.
	ErrInvalidPairing = errors.New("wiring: invalid reflector pairing")

	// ErrBadLength indicates a raw table or pair list of the wrong size.
	ErrBadLength = errors.New("wiring: wrong number of entries")

	// ErrUnknownWiring indicates a stock wiring name that is not in the catalog.
	ErrUnknownWiring = errors.New("wiring: unknown stock wiring")
)

// panicMissingLeft is raised when a validated permutation has no entry for a
// left contact. It can only happen if the bijection invariant was bypassed.
const panicMissingLeft = "wiring: left contact missing from a validated permutation"
