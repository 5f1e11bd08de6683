// Package siphash implements SipHash-c-d, the keyed pseudorandom function of
// Aumasson and Bernstein (https://cr.yp.to/siphash/siphash-20120918.pdf),
// producing 64-bit or 128-bit digests.
//
// SipHash is a fast short-input PRF designed to defend hash tables against
// flooding attacks. It is not a general-purpose cryptographic hash: it offers
// no collision resistance beyond its PRF security bound and must not be used
// for password hashing.
//
// # Basic Usage
//
// One-shot hashing with the canonical SipHash-2-4 parameters:
//
//	key, err := siphash.KeyFromBytes(secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sum := siphash.Sum64(key, []byte("message"))
//
// Streaming, feeding the message in arbitrary-sized pieces:
//
//	h := siphash.New(key)
//	h.Write(chunk1)
//	h.Write(chunk2)
//	sum := h.Sum64()
//
// Both paths produce identical digests for identical key/message pairs, for
// every way of splitting the message across Write calls. Sum64 does not
// disturb the accumulated state: it may be called repeatedly, and Write may
// continue the stream afterwards, which makes Digest usable as a running
// checksum over a growing stream.
//
// # Round Counts
//
// The compression round count c and finalization round count d are fixed per
// hasher. New and Sum64 use the canonical c=2, d=4; New48 uses the
// conservative c=4, d=8; NewRounds accepts arbitrary counts.
//
// # Package Structure
//
//   - Public API: siphash.go (Sum64, Sum128, Uint128), digest.go (New,
//     NewRounds, Digest), digest128.go (New128, Digest128)
//   - Key conversion: key.go (Key, KeyFromBytes, MustKey)
//   - Algorithm core: state.go (lane vector, SipRound, compression,
//     finalization), chunk.go (message word sequence), residue.go
//     (partial-block buffer for streaming)
//   - Errors: errors/ (exported sentinels)
package siphash
