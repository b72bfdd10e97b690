package machine

import "errors"

var (
	// ErrNilWheel indicates a missing wheel in the inventory.
	ErrNilWheel = errors.New("machine: wheel is nil")

	// ErrDuplicateWheel indicates the same inventory wheel selected for two slots.
	ErrDuplicateWheel = errors.New("machine: wheel selected more than once")
)

// panicNilLogger is raised by WithLogger(nil).
const panicNilLogger = "machine: WithLogger(nil)"
