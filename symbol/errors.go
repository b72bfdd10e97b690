package symbol

import "errors"

var (
	// ErrOutOfRange indicates a raw value outside the symbol's range.
	ErrOutOfRange = errors.New("symbol: value out of range")

	// ErrInvalidCharacter indicates a character that is not an uppercase letter A..Z.
	ErrInvalidCharacter = errors.New("symbol: invalid character")
)
