package machine

import (
	"fmt"

	"github.com/rshepherd549/enigma/scrambler"
	"github.com/rshepherd549/enigma/symbol"
)

const (
	// NumWheels is the size of the wheel inventory.
	NumWheels = 5

	// NumRotors is the number of active slots.
	NumRotors = scrambler.NumRotors
)

type wheelSlots struct{}

func (wheelSlots) Base() int  { return 0 }
func (wheelSlots) Count() int { return NumWheels }

// WheelIndex names one wheel of the inventory, 0..4.
type WheelIndex symbol.Bounded[wheelSlots]

// NewWheelIndex validates an inventory index.
//
// Errors: symbol.ErrOutOfRange.
func NewWheelIndex(i int) (WheelIndex, error) {
	s, err := symbol.New[wheelSlots](i)
	if err != nil {
		return WheelIndex{}, fmt.Errorf("wheel index: %w", err)
	}

	return WheelIndex(s), nil
}

// Int returns the index as a plain int.
func (w WheelIndex) Int() int { return symbol.Bounded[wheelSlots](w).Index() }

// Selection places an inventory wheel in an active slot with a ring setting.
type Selection struct {
	Wheel WheelIndex
	Ring  symbol.Letter
}

// NewSelection validates a raw (wheel index, ring letter) tuple.
//
// Errors: symbol.ErrOutOfRange, symbol.ErrInvalidCharacter.
func NewSelection(wheel int, ring rune) (Selection, error) {
	w, err := NewWheelIndex(wheel)
	if err != nil {
		return Selection{}, err
	}
	r, err := symbol.NewLetter(ring)
	if err != nil {
		return Selection{}, fmt.Errorf("ring setting: %w", err)
	}

	return Selection{Wheel: w, Ring: r}, nil
}

// String renders the selection as "<index>@<ring>".
func (s Selection) String() string {
	return fmt.Sprintf("%d@%v", s.Wheel.Int(), s.Ring)
}

// defaultSelections puts wheels 0, 1, 2 in the slots, all at ring A.
func defaultSelections() [NumRotors]Selection {
	var out [NumRotors]Selection
	for i := range out {
		out[i] = Selection{Wheel: WheelIndex(symbol.Bounded[wheelSlots]{}.Offset(i))}
	}

	return out
}
