package nn

import "errors"

// Common errors returned by network modules.
var (
	// ErrShapeMismatch indicates an input slice whose length does not
	// match a module's fan-in. Forward passes report it instead of
	// indexing out of range.
	ErrShapeMismatch = errors.New("input length does not match fan-in")
)
