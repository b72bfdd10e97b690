// Package machine is the top-level facade of the cipher: a wheel inventory,
// a reflector, the active rotor selection and a plug board.
//
// 🚀 Signal path per key press:
//
//	key → PlugBoard → Scrambler (step, rotors →, reflector, rotors ←) → PlugBoard → lamp
//
// ✨ Key features:
//   - five-wheel inventory, three active slots chosen with ring settings
//   - Encipher for single letters, EncipherString for whole messages
//     (all-or-nothing: one invalid character fails the call and leaves the
//     rotors where they were)
//   - Clone for independent snapshots; Locked for shared use across goroutines
//
// ⚙️ Usage:
//
//	m, err := machine.New(wiring.Reverse(), wheels)
//	err = m.Configure(selections, plugboard.Identity())
//	out, err := m.EncipherString("HELLOWORLD")
//
// Decipherment is encipherment from the same starting state: feed the
// ciphertext to a fresh machine with the same configuration.
//
// A Machine is not safe for concurrent use. Distinct machines, clones
// included, share no mutable state.
package machine
