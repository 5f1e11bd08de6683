// Package errors defines all exported error sentinels for the siphash library.
//
// This is the single source of truth for error values. The top-level siphash
// package wraps these sentinels with call-site detail, so errors.Is checks
// work regardless of where an error was produced.
package errors

import "errors"

// Key conversion errors
var (
	// ErrKeyTooShort is returned when fewer than 16 bytes of key material
	// are supplied. Key material is never padded, truncated or guessed at;
	// conversion fails before any hashing state is initialized.
	ErrKeyTooShort = errors.New("siphash: key is shorter than the required 16 bytes")
)
