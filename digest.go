package siphash

import "encoding/binary"

// Digest is a streaming 64-bit SipHash-c-d hasher. It implements hash.Hash
// and hash.Hash64.
//
// A Digest accepts the message in arbitrary-sized Write calls and produces
// the same digest as the one-shot Sum64 functions for the same key and byte
// sequence. Sum and Sum64 finalize a copy of the internal state, so they are
// idempotent and Write may continue the stream afterwards.
//
// A Digest is not safe for concurrent use; independent instances share no
// state and may be used freely across goroutines.
type Digest struct {
	s    state
	res  residue
	key  Key
	c, d int
}

// New returns a streaming SipHash-2-4 hasher keyed with key.
func New(key Key) *Digest {
	return NewRounds(key, RoundsC24, RoundsD24)
}

// New48 returns a streaming SipHash-4-8 hasher keyed with key.
func New48(key Key) *Digest {
	return NewRounds(key, RoundsC48, RoundsD48)
}

// NewRounds returns a streaming SipHash-c-d hasher with explicit round
// counts. The counts are fixed for the lifetime of the hasher.
func NewRounds(key Key, c, d int) *Digest {
	return &Digest{s: newState(key), key: key, c: c, d: d}
}

// Write feeds p into the hash. It never returns an error.
func (h *Digest) Write(p []byte) (int, error) {
	writeBlocks(&h.s, &h.res, h.c, p)
	return len(p), nil
}

// Sum64 returns the digest of the bytes written so far. It finalizes a copy
// of the state, leaving the live stream untouched.
func (h *Digest) Sum64() uint64 {
	s := h.s
	s.compress(h.res.padded(), h.c)
	return s.finalize(2, finalTweak64, h.d)
}

// Sum appends the big-endian encoding of Sum64 to b and returns the
// resulting slice.
func (h *Digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.Sum64())
}

// Reset restores the hasher to its freshly keyed zero-length state.
func (h *Digest) Reset() {
	h.s = newState(h.key)
	h.res = residue{}
}

// Size returns the digest length in bytes.
func (h *Digest) Size() int { return 8 }

// BlockSize returns the hash block size in bytes.
func (h *Digest) BlockSize() int { return wordSize }

// writeBlocks is the shared streaming step for the 64- and 128-bit digests:
// account for the input length, top off the residue and flush it if it
// fills, compress the remaining aligned words directly, then re-buffer the
// sub-word tail. The tail is under one word by construction, so a single
// pass suffices; no recursion, no double-counting.
func writeBlocks(s *state, res *residue, c int, p []byte) {
	if len(p) == 0 {
		return
	}
	res.total += uint64(len(p))

	if res.n > 0 {
		p = p[res.push(p):]
		if !res.full() {
			return
		}
		s.compress(res.word(), c)
		res.reset()
	}
	for len(p) >= wordSize {
		s.compress(binary.LittleEndian.Uint64(p), c)
		p = p[wordSize:]
	}
	if len(p) > 0 {
		res.push(p)
	}
}
