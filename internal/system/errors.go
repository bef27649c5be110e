package system

import "errors"

var (
	// ErrNoBodies indicates an empty catalog.
	ErrNoBodies = errors.New("system: catalog has no bodies")

	// ErrNonPositiveMass indicates a body with mass <= 0.
	ErrNonPositiveMass = errors.New("system: body mass must be positive")

	// ErrDuplicateName indicates two bodies sharing a name.
	ErrDuplicateName = errors.New("system: duplicate body name")

	// ErrBodyIndex indicates a body index outside [0, BodyCount).
	ErrBodyIndex = errors.New("system: body index out of range")
)
