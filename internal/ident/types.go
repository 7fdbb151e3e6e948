package ident

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Origin records where an identifier came from.
type Origin uint8

const (
	// UserString is a string id supplied in the input.
	UserString Origin = iota + 1
	// UserNumber is a numeric id supplied in the input.
	UserNumber
	// Synthetic is an id invented by an Allocator.
	Synthetic
)

// ID identifies one item within an animation run.
//
// The zero ID is invalid. IDs are comparable and safe to use as map keys; a
// synthetic ID never equals a user ID, whatever its printed form.
type ID struct {
	origin Origin
	// text is the user value, or empty for synthetic ids.
	text string
	run  uuid.UUID
	seq  uint64
}

// String returns a printable form used in logs and error messages. It is not
// a stable serialization for synthetic ids.
func (id ID) String() string {
	switch id.origin {
	case UserString, UserNumber:
		return id.text
	case Synthetic:
		return fmt.Sprintf("#%d", id.seq)
	default:
		return "<invalid>"
	}
}

// Origin reports where the id came from.
func (id ID) Origin() Origin { return id.origin }

// IsValid is false only for the zero ID.
func (id ID) IsValid() bool { return id.origin != 0 }

// IsSynthetic reports whether the id was invented by an Allocator.
func (id ID) IsSynthetic() bool { return id.origin == Synthetic }

// Value returns the id in the shape it had in the input: a string, or a
// json.Number for numeric ids. Synthetic ids have no input value and return
// false.
func (id ID) Value() (any, bool) {
	switch id.origin {
	case UserString:
		return id.text, true
	case UserNumber:
		return json.Number(id.text), true
	default:
		return nil, false
	}
}
