package scenefile

import "errors"

var (
	// ErrUnknownKind is returned for an item kind the loader does not know.
	ErrUnknownKind = errors.New("scenefile: unknown item kind")

	// ErrInvalidValue is returned when a field holds a value of the wrong
	// shape, such as a rectangle without four numbers.
	ErrInvalidValue = errors.New("scenefile: invalid value")
)
