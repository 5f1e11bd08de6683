package siphash

import "encoding/binary"

// Canonical round counts. SipHash-2-4 is the fast pair recommended by the
// paper for hash-table keying; SipHash-4-8 is the conservative pair.
const (
	RoundsC24, RoundsD24 = 2, 4
	RoundsC48, RoundsD48 = 4, 8
)

// Sum64 computes the SipHash-2-4 64-bit digest of msg under key.
func Sum64(key Key, msg []byte) uint64 {
	return Sum64Rounds(key, RoundsC24, RoundsD24, msg)
}

// Sum48 computes the SipHash-4-8 64-bit digest of msg under key.
func Sum48(key Key, msg []byte) uint64 {
	return Sum64Rounds(key, RoundsC48, RoundsD48, msg)
}

// Sum64Rounds computes the SipHash-c-d 64-bit digest of msg under key with
// explicit round counts. It is the one-shot equivalent of feeding msg to a
// Digest in any number of pieces and calling Sum64.
func Sum64Rounds(key Key, c, d int, msg []byte) uint64 {
	s := newState(key)
	for m := range words(msg) {
		s.compress(m, c)
	}
	return s.finalize(2, finalTweak64, d)
}

// Sum128 computes the SipHash-2-4 128-bit digest of msg under key.
func Sum128(key Key, msg []byte) Uint128 {
	return Sum128Rounds(key, RoundsC24, RoundsD24, msg)
}

// Sum128Rounds computes the SipHash-c-d 128-bit digest of msg under key with
// explicit round counts.
func Sum128Rounds(key Key, c, d int, msg []byte) Uint128 {
	s := newState(key)
	s.applyTweak128()
	for m := range words(msg) {
		s.compress(m, c)
	}
	// The two finalization passes refine one shared lane vector: the high
	// word is derived from the state as left by the low-word pass.
	lo := s.finalize(2, finalTweakLo, d)
	hi := s.finalize(1, finalTweakHi, d)
	return Uint128{Lo: lo, Hi: hi}
}

// Uint128 is a 128-bit digest, hi<<64 | lo.
type Uint128 struct {
	Lo, Hi uint64
}

// Bytes returns the canonical little-endian encoding of the digest: the low
// word then the high word, matching the reference implementation's test
// vectors.
func (u Uint128) Bytes() [16]byte {
	var out [16]byte
	binary.LittleEndian.PutUint64(out[0:8], u.Lo)
	binary.LittleEndian.PutUint64(out[8:16], u.Hi)
	return out
}
