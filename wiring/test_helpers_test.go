package wiring_test

import (
	"testing"

	"github.com/rshepherd549/enigma/wiring"
	"github.com/stretchr/testify/require"
)

// Wheel I in conventional notation, reused across tests.
const wheelI = "EKMFLGDQVZNTOWYHXUSPAIBRCJ"

// right returns right contact i or fails the test.
func right(t *testing.T, i int) wiring.RightContact {
	t.Helper()
	r, err := wiring.NewRightContact(i)
	require.NoError(t, err)

	return r
}

// left returns left contact i or fails the test.
func left(t *testing.T, i int) wiring.LeftContact {
	t.Helper()
	l, err := wiring.NewLeftContact(i)
	require.NoError(t, err)

	return l
}

// reversePairs is the raw pair list of the canonical i↔25-i reflector.
func reversePairs() [][2]int {
	out := make([][2]int, 0, wiring.NumPairs)
	for i := 0; i < wiring.NumPairs; i++ {
		out = append(out, [2]int{i, wiring.NumContacts - 1 - i})
	}

	return out
}

// adjacentPairs pairs 0↔1, 2↔3, ... 24↔25.
func adjacentPairs() [][2]int {
	out := make([][2]int, 0, wiring.NumPairs)
	for i := 0; i < wiring.NumContacts; i += 2 {
		out = append(out, [2]int{i, i + 1})
	}

	return out
}
