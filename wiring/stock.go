package wiring

import (
	"fmt"
	"sort"
)

// Historical Enigma I wirings in conventional notation.
var (
	stockWheels = map[string]string{
		"I":   "EKMFLGDQVZNTOWYHXUSPAIBRCJ",
		"II":  "AJDKSIRUXBLHWTMCQGZNPYFVOE",
		"III": "BDFHJLCPRTXVZNYEIWGAKMUSQO",
		"IV":  "ESOVPZJAYQUIRHXLNFTGKDCMWB",
		"V":   "VZBRGITYUPSDNHLXAWMJQOFECK",
	}
	stockReflectors = map[string]string{
		"B": "YRUHQSLDPXNGOKMIEBFZCWVJAT",
		"C": "FVPJIAOYEDRZXWGCTKUQSBNMHL",
	}
)

// StockWheel returns the wiring of a historical wheel, "I" through "V".
//
// Errors: ErrUnknownWiring.
func StockWheel(name string) (Permutation, error) {
	s, ok := stockWheels[name]
	if !ok {
		return Permutation{}, fmt.Errorf("%w: wheel %q", ErrUnknownWiring, name)
	}

	return PermutationFromString(s)
}

// StockReflector returns the wiring of a historical reflector, "B" or "C".
//
// Errors: ErrUnknownWiring.
func StockReflector(name string) (Reflector, error) {
	s, ok := stockReflectors[name]
	if !ok {
		return Reflector{}, fmt.Errorf("%w: reflector %q", ErrUnknownWiring, name)
	}

	return ReflectorFromString(s)
}

// StockWheelNames lists the catalog's wheel names in Roman numeral order.
func StockWheelNames() []string {
	return []string{"I", "II", "III", "IV", "V"}
}

// StockReflectorNames lists the catalog's reflector names, sorted.
func StockReflectorNames() []string {
	names := make([]string, 0, len(stockReflectors))
	for n := range stockReflectors {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
