// Package enigma is a library for simulating three-rotor cipher machines
// of the Enigma family.
//
// The machine is assembled bottom-up from small validated value types:
//
//	symbol     bounded symbols and the 26-letter alphabet
//	wiring     contacts, wheel permutations and reflector pairings
//	rotor      wheels, rotors with offsets, the turn-about wheel, the commutator
//	scrambler  three rotors plus reflector with odometer stepping
//	plugboard  the reciprocal letter swaps in front of the scrambler
//	machine    a wheel inventory, rotor selections and a plug board
//
// Every constructor validates its input and returns a sentinel error that can
// be matched with errors.Is; once built, values cannot be invalid. A Machine
// is not safe for concurrent use; wrap it in machine.Locked or give each
// goroutine its own Clone.
//
// Quick start:
//
//	m, _ := config.Default().Build()     // identity wheels, reverse reflector
//	out, _ := m.EncipherString("HELLOWORLD")
//	fmt.Println(out)                     // SVOOLDLIOW
//
// The enigma command under cmd/enigma exposes the same machine on the
// command line, configured from a YAML or JSON file.
package enigma
