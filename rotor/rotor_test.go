package rotor_test

import (
	"testing"

	"github.com/rshepherd549/enigma/rotor"
	"github.com/rshepherd549/enigma/symbol"
	"github.com/rshepherd549/enigma/wiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stockRotor mounts a catalog wheel at ring setting ring.
func stockRotor(t *testing.T, name string, ring rune) *rotor.Rotor {
	t.Helper()
	w, err := rotor.StockWheel(name)
	require.NoError(t, err)
	r, err := rotor.New(w, symbol.MustLetter(ring))
	require.NoError(t, err)

	return r
}

// contact returns raw contact i.
func contact(t *testing.T, i int) wiring.Contact {
	t.Helper()
	c, err := wiring.NewContact(i)
	require.NoError(t, err)

	return c
}

// TestNew_NilWheel refuses to mount nothing.
func TestNew_NilWheel(t *testing.T) {
	_, err := rotor.New(nil, symbol.MustLetter('A'))
	assert.ErrorIs(t, err, rotor.ErrNilWheel)
}

// TestRotor_RingSetting seeds the offset from the ring letter.
func TestRotor_RingSetting(t *testing.T) {
	r := stockRotor(t, "I", 'D')
	assert.Equal(t, 3, r.Offset())
	assert.Equal(t, symbol.MustLetter('D'), r.Position())

	r.Reset(symbol.MustLetter('Z'))
	assert.Equal(t, 25, r.Offset())
}

// TestRotor_OffsetZeroIsWheel checks that an unrotated rotor is its wheel.
func TestRotor_OffsetZeroIsWheel(t *testing.T) {
	r := stockRotor(t, "II", 'A')
	w := r.Wheel()
	for i := 0; i < wiring.NumContacts; i++ {
		c := contact(t, i)
		assert.Equal(t, w.ToLeft(c.Right()), r.ToLeft(c.Right()))
		assert.Equal(t, w.ToRight(c.Left()), r.ToRight(c.Left()))
	}
}

// TestRotor_Conjugation checks ToLeft = shift(+k) ∘ wheel ∘ shift(-k) for every k.
func TestRotor_Conjugation(t *testing.T) {
	w, err := rotor.StockWheel("III")
	require.NoError(t, err)
	table := w.Permutation().Table()

	for k := 0; k < wiring.NumContacts; k++ {
		r, err := rotor.New(w, symbol.Letter{}.Offset(k))
		require.NoError(t, err)
		for i := 0; i < wiring.NumContacts; i++ {
			want := symbol.Wrap(table[symbol.Wrap(i+k, wiring.NumContacts)]-k, wiring.NumContacts)
			got := r.ToLeft(contact(t, i).Right())
			assert.Equal(t, want, got.Index(), "k=%d i=%d", k, i)
			assert.Equal(t, i, r.ToRight(got).Index(), "ToRight must invert ToLeft at k=%d", k)
		}
	}
}

// TestRotor_Conjugation_Known checks one hand-computed value:
// wheel I at offset 1, R0 → enter at 1 (B) → K (10) → leave at 9.
func TestRotor_Conjugation_Known(t *testing.T) {
	r := stockRotor(t, "I", 'B')
	assert.Equal(t, 9, r.ToLeft(contact(t, 0).Right()).Index())
	assert.Equal(t, 0, r.ToRight(contact(t, 9).Left()).Index())
}

// TestRotor_Step carries exactly on the 25→0 wrap.
func TestRotor_Step(t *testing.T) {
	r := stockRotor(t, "I", 'X')
	assert.Equal(t, 0, r.Step(1)) // 23→24
	assert.Equal(t, 0, r.Step(1)) // 24→25
	assert.Equal(t, 1, r.Step(1)) // 25→0
	assert.Equal(t, 0, r.Offset())
	assert.Equal(t, 0, r.Step(1)) // 0→1

	assert.Equal(t, 0, r.Step(0))
	assert.Equal(t, 1, r.Offset(), "zero carry must not move the rotor")

	assert.Equal(t, 1, r.Step(25)) // 1→0
	assert.Panics(t, func() { r.Step(-1) })
}

// TestRotor_StepChain ripples a carry through three rotors all at Z.
func TestRotor_StepChain(t *testing.T) {
	rotors := []*rotor.Rotor{ // right to left
		stockRotor(t, "I", 'Z'),
		stockRotor(t, "II", 'Z'),
		stockRotor(t, "III", 'Z'),
	}
	carry := 1
	var steps int
	for _, r := range rotors {
		if carry == 0 {
			break
		}
		carry = r.Step(carry)
		steps++
	}
	assert.Equal(t, 3, steps)
	assert.Equal(t, 1, carry, "the leftmost rotor wraps as well")
	for _, r := range rotors {
		assert.Equal(t, 0, r.Offset())
	}
}

// TestRotor_Clone diverges independently while sharing the wheel.
func TestRotor_Clone(t *testing.T) {
	r := stockRotor(t, "IV", 'C')
	c := r.Clone()
	assert.Same(t, r.Wheel(), c.Wheel())

	c.Step(1)
	assert.Equal(t, 2, r.Offset())
	assert.Equal(t, 3, c.Offset())
}

// TestWheel_String labels stock wheels.
func TestWheel_String(t *testing.T) {
	w, err := rotor.StockWheel("I")
	require.NoError(t, err)
	assert.Equal(t, "I", w.Name())
	assert.Equal(t, "I(EKMFLGDQVZNTOWYHXUSPAIBRCJ)", w.String())
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", rotor.NewWheel("", wiring.Identity()).String())

	_, err = rotor.StockWheel("IX")
	assert.ErrorIs(t, err, wiring.ErrUnknownWiring)
}

// TestTurnAboutWheel delegates to its reflector.
func TestTurnAboutWheel(t *testing.T) {
	taw := rotor.NewTurnAboutWheel(wiring.Reverse())
	for i := 0; i < wiring.NumContacts; i++ {
		assert.Equal(t, 25-i, taw.Transform(contact(t, i).Left()).Index())
	}
	assert.Equal(t, wiring.Reverse(), taw.Reflector())
}

// TestCommutator is the identity on indices.
func TestCommutator(t *testing.T) {
	var c rotor.Commutator
	for _, l := range symbol.Letters() {
		in := c.ToContact(l)
		assert.Equal(t, l.Index(), in.Index())
		assert.Equal(t, l, c.ToLamp(in))
	}
}
