package rotor

import "errors"

// ErrNilWheel indicates a rotor built without a wheel.
var ErrNilWheel = errors.New("rotor: wheel is nil")

// panicNegativeCarry is raised by Step on a negative carry (programmer error).
const panicNegativeCarry = "rotor: Step: carry must be non-negative"
