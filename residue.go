package siphash

import "encoding/binary"

// residue buffers the not-yet-compressed tail of the message between Write
// calls, so chunk boundaries need not align with caller buffer boundaries.
//
// Invariant: n < wordSize except momentarily when a push fills the buffer,
// at which point the caller must compress the block and call reset before
// consuming further input. total accumulates the byte count of every Write
// in full at receipt time and is never reset while the stream is live; only
// its low byte is ever used, as the padding byte at finalization.
type residue struct {
	buf   [wordSize]byte
	n     int
	total uint64
}

// push copies bytes from p into the buffer starting at the current fill
// offset, stopping when the buffer is full or p is exhausted. It returns the
// number of bytes consumed.
func (r *residue) push(p []byte) int {
	c := copy(r.buf[r.n:], p)
	r.n += c
	return c
}

// full reports whether the buffer holds a complete message word.
func (r *residue) full() bool {
	return r.n == wordSize
}

// word returns the buffered block as a little-endian message word.
// Only meaningful when full.
func (r *residue) word() uint64 {
	return binary.LittleEndian.Uint64(r.buf[:])
}

// reset empties the buffer. total is deliberately preserved: it tracks the
// whole stream, not the current block.
func (r *residue) reset() {
	r.buf = [wordSize]byte{}
	r.n = 0
}

// padded returns the final padding word: the buffered bytes left-aligned in
// a zero block with the total stream length mod 256 in the last byte. It
// reads a snapshot and leaves the residue untouched, so finalization can be
// repeated and the stream resumed.
func (r *residue) padded() uint64 {
	var last [wordSize]byte
	copy(last[:], r.buf[:r.n])
	last[wordSize-1] = byte(r.total)
	return binary.LittleEndian.Uint64(last[:])
}
