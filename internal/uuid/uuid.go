// Package uuid wraps google/uuid with the form binding gin is missing.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

// UUID embeds google/uuid so that resource IDs can be bound directly
// from URI and query parameters.
type UUID struct {
	google_uuid.UUID
}

// Nil is the zero UUID, used to detect unset ID parameters.
var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so that
// query and URI parameters bind into UUID fields. An empty parameter
// binds to Nil, everything else must parse as a UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}
