package model

import (
	"fmt"

	"github.com/google/uuid"
)

// AccessMethodID identifies an access method setting. The zero value is
// the nil UUID and is never minted by NewAccessMethodID.
type AccessMethodID struct {
	id uuid.UUID
}

// NewAccessMethodID mints a random (version 4) identifier.
func NewAccessMethodID() AccessMethodID {
	return AccessMethodID{id: uuid.New()}
}

// ParseAccessMethodID parses the textual form of an identifier. Anything
// uuid.Parse rejects is rejected here with ErrInvalidID.
func ParseAccessMethodID(s string) (AccessMethodID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return AccessMethodID{}, fmt.Errorf("%w: %q: %v", ErrInvalidID, s, err)
	}
	return AccessMethodID{id: u}, nil
}

// MustParseAccessMethodID is like ParseAccessMethodID but panics on error.
// Intended for constants and tests.
func MustParseAccessMethodID(s string) AccessMethodID {
	id, err := ParseAccessMethodID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the canonical lowercase hyphenated form.
func (i AccessMethodID) String() string {
	return i.id.String()
}

func (i AccessMethodID) IsZero() bool {
	return i.id == uuid.Nil
}
