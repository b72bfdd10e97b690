package machine

import (
	"sync"

	"github.com/rshepherd549/enigma/plugboard"
	"github.com/rshepherd549/enigma/symbol"
)

// Locked serialises access to one Machine so several goroutines can feed it.
// Characters are enciphered in the order the lock is acquired; a whole
// EncipherString call holds the lock, so messages never interleave.
type Locked struct {
	mu sync.Mutex // guards m
	m  *Machine
}

// NewLocked takes ownership of m. The caller must not use m directly afterwards.
func NewLocked(m *Machine) *Locked {
	return &Locked{m: m}
}

// Encipher presses one key.
func (l *Locked) Encipher(key symbol.Letter) symbol.Letter {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.Encipher(key)
}

// EncipherString enciphers a whole message atomically.
func (l *Locked) EncipherString(text string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.EncipherString(text)
}

// Configure reconfigures the wrapped machine.
func (l *Locked) Configure(selections [NumRotors]Selection, pb plugboard.PlugBoard) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.Configure(selections, pb)
}

// Reset returns the rotors to their ring settings.
func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.Reset()
}

// Snapshot returns an independent clone of the machine's current state.
func (l *Locked) Snapshot() *Machine {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.m.Clone()
}
