package plugboard_test

import (
	"testing"

	"github.com/rshepherd549/enigma/plugboard"
	"github.com/rshepherd549/enigma/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plug(a, b rune) plugboard.Plug {
	return plugboard.Plug{A: symbol.MustLetter(a), B: symbol.MustLetter(b)}
}

// TestIdentity passes every letter through; the zero value agrees.
func TestIdentity(t *testing.T) {
	pb := plugboard.Identity()
	for _, l := range symbol.Letters() {
		assert.Equal(t, l, pb.Transform(l))
	}
	assert.Equal(t, pb, plugboard.PlugBoard{})
	assert.Empty(t, pb.Plugs())
	assert.Equal(t, "", pb.String())
}

// TestNew_SwapsAndSelfInverse checks configured pairs and untouched letters.
func TestNew_SwapsAndSelfInverse(t *testing.T) {
	pb, err := plugboard.New([]plugboard.Plug{plug('A', 'B'), plug('L', 'E'), plug('W', 'D')})
	require.NoError(t, err)

	assert.Equal(t, symbol.MustLetter('B'), pb.Transform(symbol.MustLetter('A')))
	assert.Equal(t, symbol.MustLetter('A'), pb.Transform(symbol.MustLetter('B')))
	assert.Equal(t, symbol.MustLetter('L'), pb.Transform(symbol.MustLetter('E')))
	assert.Equal(t, symbol.MustLetter('D'), pb.Transform(symbol.MustLetter('W')))
	assert.Equal(t, symbol.MustLetter('H'), pb.Transform(symbol.MustLetter('H')))

	for _, l := range symbol.Letters() {
		assert.Equal(t, l, pb.Transform(pb.Transform(l)))
	}
	assert.Equal(t, "AB DW EL", pb.String())
}

// TestNew_FullBoard accepts 13 plugs.
func TestNew_FullBoard(t *testing.T) {
	plugs := make([]plugboard.Plug, 0, plugboard.MaxPlugs)
	for i := 0; i < symbol.NumLetters; i += 2 {
		plugs = append(plugs, plugboard.Plug{A: symbol.Letter{}.Offset(i), B: symbol.Letter{}.Offset(i + 1)})
	}
	pb, err := plugboard.New(plugs)
	require.NoError(t, err)
	assert.Len(t, pb.Plugs(), plugboard.MaxPlugs)
	for _, l := range symbol.Letters() {
		assert.NotEqual(t, l, pb.Transform(l))
	}
}

// TestNew_Duplicates rejects reused and self-plugged letters.
func TestNew_Duplicates(t *testing.T) {
	_, err := plugboard.New([]plugboard.Plug{plug('A', 'B'), plug('B', 'C')})
	assert.ErrorIs(t, err, plugboard.ErrDuplicateLetter)

	_, err = plugboard.New([]plugboard.Plug{plug('Q', 'Q')})
	assert.ErrorIs(t, err, plugboard.ErrDuplicateLetter)
}

// TestParse covers notation and failure classes.
func TestParse(t *testing.T) {
	pb, err := plugboard.Parse("AB, EL  WD")
	require.NoError(t, err)
	assert.Equal(t, "AB DW EL", pb.String())

	pb, err = plugboard.Parse("")
	require.NoError(t, err)
	assert.Equal(t, plugboard.Identity(), pb)

	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"ShortToken", "AB C", plugboard.ErrBadPlug},
		{"LongToken", "ABC", plugboard.ErrBadPlug},
		{"LowerCase", "ab", symbol.ErrInvalidCharacter},
		{"Digit", "A1", symbol.ErrInvalidCharacter},
		{"Reuse", "AB AC", plugboard.ErrDuplicateLetter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := plugboard.Parse(tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
