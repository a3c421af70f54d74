package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")

	// State errors
	ErrRotationActive = errors.New("cubesim: a rotation is in flight")
	ErrEngineBusy     = errors.New("cubesim: rotation engine already animating")
)
