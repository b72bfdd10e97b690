package wiring

import (
	"fmt"

	"github.com/rshepherd549/enigma/symbol"
)

// NumContacts is the number of contacts on each face of a wheel.
const NumContacts = symbol.NumLetters

// contacts bounds contact indices to [0, NumContacts).
type contacts struct{}

func (contacts) Base() int  { return 0 }
func (contacts) Count() int { return NumContacts }

// Contact is one of the 26 connection points of a face, 0..25, with no side attached.
type Contact symbol.Bounded[contacts]

// NewContact validates a raw contact index.
//
// Errors: symbol.ErrOutOfRange if i ∉ [0, 26).
func NewContact(i int) (Contact, error) {
	s, err := symbol.New[contacts](i)
	if err != nil {
		return Contact{}, fmt.Errorf("contact: %w", err)
	}

	return Contact(s), nil
}

// contactAt returns the contact at i mod 26. Callers pass indices already known
// to be in range (table entries, loop counters).
func contactAt(i int) Contact {
	return Contact(symbol.Bounded[contacts]{}.Offset(i))
}

// ContactFromLetter maps A..Z onto contacts 0..25.
func ContactFromLetter(l symbol.Letter) Contact {
	return contactAt(l.Index())
}

// Index returns the contact number 0..25.
func (c Contact) Index() int { return symbol.Bounded[contacts](c).Index() }

// Shift returns the contact k positions further round the face, wrapping mod 26.
func (c Contact) Shift(k int) Contact { return Contact(symbol.Bounded[contacts](c).Offset(k)) }

// Letter returns the letter sharing c's position in the alphabet.
func (c Contact) Letter() symbol.Letter {
	l, err := symbol.LetterFromIndex(c.Index())
	if err != nil {
		panic(err) // both ranges have NumContacts entries
	}

	return l
}

// Left tags c as a left-face contact.
func (c Contact) Left() LeftContact { return LeftContact{c: c} }

// Right tags c as a right-face contact.
func (c Contact) Right() RightContact { return RightContact{c: c} }

// LeftContact is a contact on the left face of a wheel (the reflector side).
type LeftContact struct{ c Contact }

// NewLeftContact validates a raw left contact index.
func NewLeftContact(i int) (LeftContact, error) {
	c, err := NewContact(i)
	if err != nil {
		return LeftContact{}, err
	}

	return c.Left(), nil
}

// Contact drops the side tag.
func (l LeftContact) Contact() Contact { return l.c }

// Index returns the contact number 0..25.
func (l LeftContact) Index() int { return l.c.Index() }

// Shift rotates l by k positions, staying on the left face.
func (l LeftContact) Shift(k int) LeftContact { return LeftContact{c: l.c.Shift(k)} }

// String renders l as "L<n>".
func (l LeftContact) String() string { return fmt.Sprintf("L%d", l.Index()) }

// RightContact is a contact on the right face of a wheel (the keyboard side).
type RightContact struct{ c Contact }

// NewRightContact validates a raw right contact index.
func NewRightContact(i int) (RightContact, error) {
	c, err := NewContact(i)
	if err != nil {
		return RightContact{}, err
	}

	return c.Right(), nil
}

// Contact drops the side tag.
func (r RightContact) Contact() Contact { return r.c }

// Index returns the contact number 0..25.
func (r RightContact) Index() int { return r.c.Index() }

// Shift rotates r by k positions, staying on the right face.
func (r RightContact) Shift(k int) RightContact { return RightContact{c: r.c.Shift(k)} }

// String renders r as "R<n>".
func (r RightContact) String() string { return fmt.Sprintf("R%d", r.Index()) }
