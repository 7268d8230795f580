// Package uuid wraps google/uuid with gin parameter binding so that
// handlers can declare ID fields directly in their uri and body structs.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID embeds google/uuid, all of its methods are promoted.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero value, an ID with all bits set to zero.
var Nil UUID

// New returns a random ID.
func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam binds a URI or query parameter. An empty parameter
// binds to Nil so that "required" validation rejects it.
func (u *UUID) UnmarshalParam(param string) error {
	if param == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(param)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
