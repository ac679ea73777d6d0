package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")

	// Engine errors
	ErrEngineBusy = errors.New("cubesim: rotation already in flight")
)
