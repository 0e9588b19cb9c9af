package engine

import "errors"

var (
	// ErrNotInstalled indicates an operation that requires an existing
	// namespace installation.
	ErrNotInstalled = errors.New("not installed")

	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")
)
