package siphash

// Digest128 is a streaming 128-bit SipHash-c-d hasher. It implements
// hash.Hash.
//
// It follows the same streaming contract as Digest: Sum and Sum128 finalize
// a copy of the internal state, so finalization is idempotent and the stream
// may be continued afterwards.
type Digest128 struct {
	s    state
	res  residue
	key  Key
	c, d int
}

// New128 returns a streaming 128-bit SipHash-2-4 hasher keyed with key.
func New128(key Key) *Digest128 {
	return New128Rounds(key, RoundsC24, RoundsD24)
}

// New128Rounds returns a streaming 128-bit SipHash-c-d hasher with explicit
// round counts.
func New128Rounds(key Key, c, d int) *Digest128 {
	s := newState(key)
	s.applyTweak128()
	return &Digest128{s: s, key: key, c: c, d: d}
}

// Write feeds p into the hash. It never returns an error.
func (h *Digest128) Write(p []byte) (int, error) {
	writeBlocks(&h.s, &h.res, h.c, p)
	return len(p), nil
}

// Sum128 returns the 128-bit digest of the bytes written so far. It
// finalizes a copy of the state, leaving the live stream untouched.
func (h *Digest128) Sum128() Uint128 {
	s := h.s
	s.compress(h.res.padded(), h.c)
	lo := s.finalize(2, finalTweakLo, h.d)
	hi := s.finalize(1, finalTweakHi, h.d)
	return Uint128{Lo: lo, Hi: hi}
}

// Sum appends the canonical little-endian encoding of Sum128 to b and
// returns the resulting slice.
func (h *Digest128) Sum(b []byte) []byte {
	sum := h.Sum128().Bytes()
	return append(b, sum[:]...)
}

// Reset restores the hasher to its freshly keyed zero-length state.
func (h *Digest128) Reset() {
	h.s = newState(h.key)
	h.s.applyTweak128()
	h.res = residue{}
}

// Size returns the digest length in bytes.
func (h *Digest128) Size() int { return 16 }

// BlockSize returns the hash block size in bytes.
func (h *Digest128) BlockSize() int { return wordSize }
