package siphash

import "math/bits"

// Initialization constants from the SipHash paper §2.1, the ASCII of
// "somepseudorandomlygeneratedbytes" split into four little-endian words.
const (
	initConst0 = 0x736f6d6570736575
	initConst1 = 0x646f72616e646f6d
	initConst2 = 0x6c7967656e657261
	initConst3 = 0x7465646279746573
)

// Finalization tweak constants. The 64-bit output XORs finalTweak64 into v2.
// The 128-bit output XORs tweak128 into v1 after initialization, then
// finalizes twice: finalTweakLo into v2 for the low word and finalTweakHi
// into v1 for the high word.
const (
	finalTweak64 = 0xff
	tweak128     = 0xee
	finalTweakLo = 0xee
	finalTweakHi = 0xdd
)

// state is the full mutable algorithm state: four 64-bit lanes derived from
// the key halves and evolved only by SipRound and the two XOR injection
// points (compression and finalization). It is a small value type; callers
// that need a non-destructive finalization copy it by assignment.
type state struct {
	v0, v1, v2, v3 uint64
}

// newState initializes the lane vector from the two key halves.
func newState(k Key) state {
	return state{
		v0: k.K0 ^ initConst0,
		v1: k.K1 ^ initConst1,
		v2: k.K0 ^ initConst2,
		v3: k.K1 ^ initConst3,
	}
}

// round applies one SipRound, the ARX network from the paper §2.2.
// Additions wrap mod 2^64; rotation amounts are fixed by the design.
func (s *state) round() {
	s.v0 += s.v1
	s.v2 += s.v3
	s.v1 = bits.RotateLeft64(s.v1, 13)
	s.v3 = bits.RotateLeft64(s.v3, 16)
	s.v1 ^= s.v0
	s.v3 ^= s.v2

	s.v0 = bits.RotateLeft64(s.v0, 32)

	s.v2 += s.v1
	s.v0 += s.v3
	s.v1 = bits.RotateLeft64(s.v1, 17)
	s.v3 = bits.RotateLeft64(s.v3, 21)
	s.v1 ^= s.v2
	s.v3 ^= s.v0

	s.v2 = bits.RotateLeft64(s.v2, 32)
}

// compress injects one message word: v3 ^= m, c rounds, v0 ^= m.
// Message words must be compressed in order, exactly once each.
func (s *state) compress(m uint64, c int) {
	s.v3 ^= m
	for i := 0; i < c; i++ {
		s.round()
	}
	s.v0 ^= m
}

// finalize XORs tweak into the given lane (1 or 2), applies d rounds and
// folds the lanes into the output word. It mutates s: the 128-bit output is
// produced by two sequential finalize calls refining the same lane vector,
// and callers needing an idempotent result finalize a copy.
func (s *state) finalize(lane int, tweak uint64, d int) uint64 {
	if lane == 1 {
		s.v1 ^= tweak
	} else {
		s.v2 ^= tweak
	}
	for i := 0; i < d; i++ {
		s.round()
	}
	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

// applyTweak128 marks the state for 128-bit output. Called exactly once,
// immediately after initialization and before any compression.
func (s *state) applyTweak128() {
	s.v1 ^= tweak128
}
