package siphash

import (
	"encoding/binary"
	"fmt"

	siperrors "github.com/tamirms/siphash/errors"
)

// KeySize is the key length in bytes required by SipHash.
const KeySize = 16

// Key holds the two 64-bit halves of a 16-byte SipHash key, the only form of
// key material the algorithm core accepts. K0 and K1 are the little-endian
// interpretations of the first and second 8 key bytes respectively.
type Key struct {
	K0, K1 uint64
}

// NewKey builds a Key directly from its two 64-bit halves.
func NewKey(k0, k1 uint64) Key {
	return Key{K0: k0, K1: k1}
}

// KeyFromBytes converts raw key material into a Key. The first KeySize bytes
// are used and any excess is ignored. If fewer than KeySize bytes are
// supplied it returns a KeyLengthError wrapping errors.ErrKeyTooShort; short
// keys are never padded or truncated to fit.
func KeyFromBytes(b []byte) (Key, error) {
	if len(b) < KeySize {
		return Key{}, KeyLengthError(len(b))
	}
	return Key{
		K0: binary.LittleEndian.Uint64(b[0:8]),
		K1: binary.LittleEndian.Uint64(b[8:16]),
	}, nil
}

// MustKey is like KeyFromBytes but panics on short input. It is intended for
// keys known at compile time or already validated.
func MustKey(b []byte) Key {
	k, err := KeyFromBytes(b)
	if err != nil {
		panic(err)
	}
	return k
}

// KeyLengthError reports the actual number of key bytes received when
// conversion fails. It unwraps to errors.ErrKeyTooShort.
type KeyLengthError int

func (e KeyLengthError) Error() string {
	return fmt.Sprintf("%v: got %d bytes", siperrors.ErrKeyTooShort, int(e))
}

func (e KeyLengthError) Unwrap() error {
	return siperrors.ErrKeyTooShort
}
