package symbol

import "fmt"

// Bounds describes a fixed integer range [Base, Base+Count).
// Implementations are zero-size marker types; their methods must be constant.
type Bounds interface {
	Base() int
	Count() int
}

// Bounded is a value constrained to the range described by B.
//
// It stores the zero-based index into the range, so the zero value of
// Bounded[B] is the first symbol of the range and is always valid.
type Bounded[B Bounds] struct {
	index int
}

// New validates raw against B and returns the corresponding symbol.
//
// Errors: ErrOutOfRange if raw ∉ [Base, Base+Count).
// Complexity: O(1).
func New[B Bounds](raw int) (Bounded[B], error) {
	var b B
	if raw < b.Base() || raw >= b.Base()+b.Count() {
		return Bounded[B]{}, fmt.Errorf("%w: %d not in [%d, %d)", ErrOutOfRange, raw, b.Base(), b.Base()+b.Count())
	}

	return Bounded[B]{index: raw - b.Base()}, nil
}

// FromIndex returns the symbol at zero-based position i of the range.
//
// Errors: ErrOutOfRange if i ∉ [0, Count).
func FromIndex[B Bounds](i int) (Bounded[B], error) {
	var b B

	return New[B](b.Base() + i)
}

// Value returns the raw value, Base+Index.
func (s Bounded[B]) Value() int {
	var b B

	return b.Base() + s.index
}

// Index returns the zero-based position of s inside its range.
func (s Bounded[B]) Index() int {
	return s.index
}

// Offset returns the symbol delta positions away from s, wrapping modulo Count:
// (value - base + delta) mod count + base. delta may be negative.
func (s Bounded[B]) Offset(delta int) Bounded[B] {
	var b B

	return Bounded[B]{index: Wrap(s.index+delta, b.Count())}
}

// Wrap reduces v into [0, n) for any sign of v. n must be positive.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}

	return v
}
