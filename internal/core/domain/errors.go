package domain

import "errors"

// Error taxonomy for the driver's exit-code mapping. The teacher never
// reaches for an errors library (no pkg/errors, no custom error-code
// framework) even in its config validation path, so this follows the same
// restraint: sentinel values wrapped with fmt.Errorf("...: %w", ...) at the
// call site.
var (
	// ErrIO covers file open, read and close failures from the token
	// source.
	ErrIO = errors.New("io error")
)
