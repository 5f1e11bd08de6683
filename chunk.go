package siphash

import (
	"encoding/binary"
	"iter"
)

// wordSize is the message block size in bytes. SipHash consumes the message
// as 8-byte little-endian words.
const wordSize = 8

// words returns a single-use sequence of the message words of msg: one word
// per full 8-byte group in slice order, followed unconditionally by the
// padding word. The padding word exists even when msg is block-aligned (or
// empty) because it encodes the message length, not just leftover bytes: the
// 0-7 remaining bytes are left-aligned into a zero block whose final byte is
// len(msg) mod 256.
func words(msg []byte) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		total := len(msg)
		for len(msg) >= wordSize {
			if !yield(binary.LittleEndian.Uint64(msg)) {
				return
			}
			msg = msg[wordSize:]
		}
		var last [wordSize]byte
		copy(last[:], msg)
		last[wordSize-1] = byte(total)
		yield(binary.LittleEndian.Uint64(last[:]))
	}
}
