// Package symbol provides bounded integer values: the unit of validation for
// every letter, contact and index in the machine.
//
// 🚀 What is a bounded symbol?
//
//	A Bounded[B] is an integer guaranteed to lie in [B.Base(), B.Base()+B.Count()).
//	The only way to obtain one from a raw value is New, which fails with
//	ErrOutOfRange instead of producing an invalid instance.
//
// ✨ Key features:
//   - immutable value semantics; == compares values
//   - modular Offset by any signed amount (rotor conjugation, stepping)
//   - zero value is the first symbol of the range, never an invalid one
//   - Letter: the 26 uppercase letters A..Z shared by keys and lamps
//
// ⚙️ Usage:
//
//	l, err := symbol.NewLetter('Q')
//	if err != nil {
//	  // errors.Is(err, symbol.ErrInvalidCharacter)
//	}
//	next := l.Offset(1) // 'R'
//
// Complexity: every operation is O(1) except ParseLetters/FormatLetters, O(n).
package symbol
