// Package scrambler runs a character through the rotor stack.
//
// Per key press Encipher:
//  1. converts the key to an entry contact (Commutator),
//  2. steps the rotors, rightmost first, rippling carries leftwards,
//  3. passes the contact right→left through every rotor,
//  4. reflects it (TurnAboutWheel),
//  5. passes it left→right back through every rotor,
//  6. converts the exit contact to a lamp.
//
// Steps 3–6 (Transform) are, for a frozen rotor state, a bijection on the
// alphabet that is its own inverse. Because step 2 moves the rotors first,
// two consecutive Encipher calls are generally not inverses of each other.
package scrambler
