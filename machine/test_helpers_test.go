package machine_test

import (
	"testing"

	"github.com/rshepherd549/enigma/machine"
	"github.com/rshepherd549/enigma/plugboard"
	"github.com/rshepherd549/enigma/rotor"
	"github.com/rshepherd549/enigma/symbol"
	"github.com/rshepherd549/enigma/wiring"
	"github.com/stretchr/testify/require"
)

// Messages shared across tests.
const (
	plainHello  = "HELLOWORLD"
	cipherHello = "SVOOLDLIOW"
	cipherPlugs = "SOVVEDEIVW"
)

// identityWheels is an inventory of five straight-through wheels.
func identityWheels() [machine.NumWheels]*rotor.Wheel {
	var out [machine.NumWheels]*rotor.Wheel
	for i := range out {
		out[i] = rotor.NewWheel("", wiring.Identity())
	}

	return out
}

// stockWheels is the historical inventory I..V.
func stockWheels(t testing.TB) [machine.NumWheels]*rotor.Wheel {
	t.Helper()
	var out [machine.NumWheels]*rotor.Wheel
	for i, name := range wiring.StockWheelNames() {
		w, err := rotor.StockWheel(name)
		require.NoError(t, err)
		out[i] = w
	}

	return out
}

// selections builds three selections from wheel indices and ring letters.
func selections(t testing.TB, wheels [machine.NumRotors]int, rings string) [machine.NumRotors]machine.Selection {
	t.Helper()
	var out [machine.NumRotors]machine.Selection
	rs := []rune(rings)
	require.Len(t, rs, machine.NumRotors)
	for i := range out {
		s, err := machine.NewSelection(wheels[i], rs[i])
		require.NoError(t, err)
		out[i] = s
	}

	return out
}

// reverseMachine is the reference setup: identity wheels, reverse reflector,
// rings AAA, and the given plugs.
func reverseMachine(t testing.TB, plugs string) *machine.Machine {
	t.Helper()
	m, err := machine.New(wiring.Reverse(), identityWheels())
	require.NoError(t, err)
	pb, err := plugboard.Parse(plugs)
	require.NoError(t, err)
	require.NoError(t, m.Configure(selections(t, [3]int{0, 1, 2}, "AAA"), pb))

	return m
}

// stockMachine builds a machine over wheels I..V with the given reflector,
// selection and plugs.
func stockMachine(t testing.TB, reflector string, wheels [machine.NumRotors]int, rings, plugs string) *machine.Machine {
	t.Helper()
	ref, err := wiring.StockReflector(reflector)
	require.NoError(t, err)
	m, err := machine.New(ref, stockWheels(t))
	require.NoError(t, err)
	pb, err := plugboard.Parse(plugs)
	require.NoError(t, err)
	require.NoError(t, m.Configure(selections(t, wheels, rings), pb))

	return m
}

// letter is symbol.MustLetter, shortened for tables.
func letter(r rune) symbol.Letter { return symbol.MustLetter(r) }
