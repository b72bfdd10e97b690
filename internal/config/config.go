// Package config loads machine configurations from YAML or JSON files and
// turns them into machines, reporting errors against the offending field.
//
// Example file:
//
//	wheels: [I, II, III, IV, V]
//	reflector: B
//	rotors:
//	  - {wheel: 0, ring: A}
//	  - {wheel: 1, ring: A}
//	  - {wheel: 2, ring: A}
//	plugs: "AB EL WD"
//
// Wheels are stock names ("I".."V"), "identity", or a 26-letter wiring.
// The reflector is a stock name ("B", "C"), "reverse", or a 26-letter wiring.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/rshepherd549/enigma/machine"
	"github.com/rshepherd549/enigma/plugboard"
	"github.com/rshepherd549/enigma/rotor"
	"github.com/rshepherd549/enigma/wiring"
)

// Names accepted besides stock names and wiring strings.
const (
	IdentityWheel    = "identity"
	ReverseReflector = "reverse"
)

var (
	// ErrInvalid marks a configuration that cannot build a machine. The wrapped
	// message names the field, e.g. "rotors[1].ring".
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrParse marks a file that is not well-formed YAML or JSON.
	ErrParse = errors.New("config: cannot parse")
)

// File is the on-disk shape of a machine configuration.
type File struct {
	Wheels    []string `yaml:"wheels" json:"wheels"`
	Reflector string   `yaml:"reflector" json:"reflector"`
	Rotors    []Rotor  `yaml:"rotors" json:"rotors"`
	Plugs     string   `yaml:"plugs,omitempty" json:"plugs,omitempty"`
}

// Rotor selects an inventory wheel for one slot, left to right.
type Rotor struct {
	Wheel int    `yaml:"wheel" json:"wheel"`
	Ring  string `yaml:"ring" json:"ring"`
}

// Default is the reference setup: five identity wheels, the reverse
// reflector, wheels 0,1,2 at ring A and no plugs.
func Default() *File {
	f := &File{Reflector: ReverseReflector}
	for i := 0; i < machine.NumWheels; i++ {
		f.Wheels = append(f.Wheels, IdentityWheel)
	}
	for i := 0; i < machine.NumRotors; i++ {
		f.Rotors = append(f.Rotors, Rotor{Wheel: i, Ring: "A"})
	}

	return f
}

// Load reads path, choosing JSON for a ".json" extension and YAML otherwise.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}

	return Parse(data, format)
}

// Parse decodes data over Default(); fields absent from data keep their
// defaults. Unknown fields are rejected. format is "yaml" or "json".
func Parse(data []byte, format string) (*File, error) {
	f := Default()
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w json: %w", ErrParse, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w yaml: %w", ErrParse, err)
		}
	}

	return f, nil
}

// Marshal renders f as YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Build validates every field and assembles the machine.
//
// Errors: ErrInvalid wrapping the field path and the underlying sentinel
// (wiring.ErrNotBijective, plugboard.ErrDuplicateLetter, ...).
func (f *File) Build(opts ...machine.Option) (*machine.Machine, error) {
	if len(f.Wheels) != machine.NumWheels {
		return nil, fmt.Errorf("%w: wheels: got %d, want %d", ErrInvalid, len(f.Wheels), machine.NumWheels)
	}
	var wheels [machine.NumWheels]*rotor.Wheel
	for i, name := range f.Wheels {
		w, err := buildWheel(name)
		if err != nil {
			return nil, fmt.Errorf("%w: wheels[%d]: %w", ErrInvalid, i, err)
		}
		wheels[i] = w
	}

	ref, err := buildReflector(f.Reflector)
	if err != nil {
		return nil, fmt.Errorf("%w: reflector: %w", ErrInvalid, err)
	}

	if len(f.Rotors) != machine.NumRotors {
		return nil, fmt.Errorf("%w: rotors: got %d, want %d", ErrInvalid, len(f.Rotors), machine.NumRotors)
	}
	var sel [machine.NumRotors]machine.Selection
	for i, r := range f.Rotors {
		if utf8.RuneCountInString(r.Ring) != 1 {
			return nil, fmt.Errorf("%w: rotors[%d].ring: want one letter, got %q", ErrInvalid, i, r.Ring)
		}
		ring, _ := utf8.DecodeRuneInString(r.Ring)
		s, err := machine.NewSelection(r.Wheel, ring)
		if err != nil {
			return nil, fmt.Errorf("%w: rotors[%d]: %w", ErrInvalid, i, err)
		}
		sel[i] = s
	}

	pb, err := plugboard.Parse(f.Plugs)
	if err != nil {
		return nil, fmt.Errorf("%w: plugs: %w", ErrInvalid, err)
	}

	m, err := machine.New(ref, wheels, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := m.Configure(sel, pb); err != nil {
		return nil, fmt.Errorf("%w: rotors: %w", ErrInvalid, err)
	}

	return m, nil
}

func buildWheel(name string) (*rotor.Wheel, error) {
	switch {
	case name == IdentityWheel:
		return rotor.NewWheel(IdentityWheel, wiring.Identity()), nil
	case len(name) == wiring.NumContacts:
		p, err := wiring.PermutationFromString(name)
		if err != nil {
			return nil, err
		}
		return rotor.NewWheel("", p), nil
	default:
		return rotor.StockWheel(name)
	}
}

func buildReflector(name string) (wiring.Reflector, error) {
	switch {
	case name == ReverseReflector:
		return wiring.Reverse(), nil
	case len(name) == wiring.NumContacts:
		return wiring.ReflectorFromString(name)
	default:
		return wiring.StockReflector(name)
	}
}
