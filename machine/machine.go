package machine

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rshepherd549/enigma/plugboard"
	"github.com/rshepherd549/enigma/rotor"
	"github.com/rshepherd549/enigma/scrambler"
	"github.com/rshepherd549/enigma/symbol"
	"github.com/rshepherd549/enigma/wiring"
)

// Machine couples a plug board with a scrambler built from a wheel inventory.
//
// Wheels and the reflector are immutable and shared; the scrambler's rotor
// offsets are the only state that changes while enciphering.
type Machine struct {
	wheels     [NumWheels]*rotor.Wheel
	turnAbout  rotor.TurnAboutWheel
	selections [NumRotors]Selection
	plugBoard  plugboard.PlugBoard
	scrambler  *scrambler.Scrambler
	logger     *slog.Logger
}

// New builds a machine over the given inventory. It starts configured with
// wheels 0, 1 and 2 (left to right), all at ring A, and no plugs; call
// Configure to choose otherwise.
//
// Errors: ErrNilWheel.
func New(reflector wiring.Reflector, wheels [NumWheels]*rotor.Wheel, opts ...Option) (*Machine, error) {
	for i, w := range wheels {
		if w == nil {
			return nil, fmt.Errorf("%w: inventory slot %d", ErrNilWheel, i)
		}
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Machine{
		wheels:    wheels,
		turnAbout: rotor.NewTurnAboutWheel(reflector),
		logger:    o.logger,
	}
	if err := m.Configure(defaultSelections(), plugboard.Identity()); err != nil {
		return nil, err
	}

	return m, nil
}

// Configure mounts the selected wheels (left to right) at their ring settings
// and installs pb. Rotor positions restart from the ring settings.
// On error the previous configuration is kept.
//
// Errors: ErrDuplicateWheel.
func (m *Machine) Configure(selections [NumRotors]Selection, pb plugboard.PlugBoard) error {
	var used [NumWheels]bool
	rotors := make([]*rotor.Rotor, 0, NumRotors)
	for slot, sel := range selections {
		idx := sel.Wheel.Int()
		if used[idx] {
			return fmt.Errorf("%w: wheel %d in slot %d", ErrDuplicateWheel, idx, slot)
		}
		used[idx] = true

		r, err := rotor.New(m.wheels[idx], sel.Ring)
		if err != nil {
			return fmt.Errorf("slot %d: %w", slot, err)
		}
		rotors = append(rotors, r)
	}
	s, err := scrambler.New(m.turnAbout, rotors)
	if err != nil {
		return err
	}

	m.selections = selections
	m.plugBoard = pb
	m.scrambler = s
	m.logger.Debug("machine configured",
		"rotors", m.describeRotors(),
		"reflector", m.turnAbout.Reflector().String(),
		"plugs", pb.String())

	return nil
}

// Reset returns the rotors to their ring settings, keeping the configuration.
func (m *Machine) Reset() {
	var pos [NumRotors]symbol.Letter
	for i, sel := range m.selections {
		pos[i] = sel.Ring
	}
	m.scrambler.SetPositions(pos)
}

// Encipher presses one key and returns the lit lamp.
func (m *Machine) Encipher(key symbol.Letter) symbol.Letter {
	return m.plugBoard.Transform(m.scrambler.Encipher(m.plugBoard.Transform(key)))
}

// EncipherLetters presses each key in order.
func (m *Machine) EncipherLetters(keys []symbol.Letter) []symbol.Letter {
	out := make([]symbol.Letter, len(keys))
	for i, k := range keys {
		out[i] = m.Encipher(k)
	}

	return out
}

// EncipherString validates every character of text before pressing any key,
// so an invalid character fails the whole call and leaves the rotors unmoved.
//
// Errors: symbol.ErrInvalidCharacter, with the offending position.
func (m *Machine) EncipherString(text string) (string, error) {
	keys, err := symbol.ParseLetters(text)
	if err != nil {
		m.logger.Debug("message rejected", "error", err)
		return "", err
	}
	out := symbol.FormatLetters(m.EncipherLetters(keys))
	m.logger.Debug("message enciphered", "letters", len(keys), "positions", m.PositionString())

	return out, nil
}

// Clone returns a machine with the same configuration and an independent copy
// of the current rotor positions.
func (m *Machine) Clone() *Machine {
	c := *m
	c.scrambler = m.scrambler.Clone()

	return &c
}

// Positions returns the rotor window letters, left to right.
func (m *Machine) Positions() [NumRotors]symbol.Letter {
	return m.scrambler.Positions()
}

// PositionString renders Positions, e.g. "AQZ".
func (m *Machine) PositionString() string {
	p := m.Positions()

	return symbol.FormatLetters(p[:])
}

// SetPositions moves the rotors to pos without touching the configuration.
func (m *Machine) SetPositions(pos [NumRotors]symbol.Letter) {
	m.scrambler.SetPositions(pos)
}

// Selections returns the active configuration, left to right.
func (m *Machine) Selections() [NumRotors]Selection { return m.selections }

// PlugBoard returns the installed plug board.
func (m *Machine) PlugBoard() plugboard.PlugBoard { return m.plugBoard }

// Reflector returns the machine's reflector.
func (m *Machine) Reflector() wiring.Reflector { return m.turnAbout.Reflector() }

// Wheels returns the inventory.
func (m *Machine) Wheels() [NumWheels]*rotor.Wheel { return m.wheels }

// String summarises the configuration, e.g. "rotors=[0@A 1@A 2@A] pos=AAA plugs=[AB]".
func (m *Machine) String() string {
	return fmt.Sprintf("rotors=[%s] pos=%s plugs=[%s]", m.describeRotors(), m.PositionString(), m.plugBoard)
}

func (m *Machine) describeRotors() string {
	parts := make([]string, len(m.selections))
	for i, s := range m.selections {
		parts[i] = s.String()
	}

	return strings.Join(parts, " ")
}
