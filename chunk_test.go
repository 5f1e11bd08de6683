package siphash

import (
	"slices"
	"testing"
)

func collectWords(msg []byte) []uint64 {
	var out []uint64
	for m := range words(msg) {
		out = append(out, m)
	}
	return out
}

// TestWordsFifteenBytes: two full words would not cover 15 bytes, so the
// sequence is one full word plus the padded word carrying bytes 8..14 and
// the length byte 15.
func TestWordsFifteenBytes(t *testing.T) {
	msg := make([]byte, 15)
	for i := range msg {
		msg[i] = byte(i)
	}
	got := collectWords(msg)
	want := []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908}
	if !slices.Equal(got, want) {
		t.Fatalf("words(15 bytes) = %#x, want %#x", got, want)
	}
}

// TestWordsAligned: a block-aligned message still gets a padding word, all
// zero except the length byte. 16 bytes therefore chunk into three words.
func TestWordsAligned(t *testing.T) {
	msg := make([]byte, 16)
	for i := range msg {
		msg[i] = byte(i)
	}
	got := collectWords(msg)
	want := []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908, 0x1000000000000000}
	if !slices.Equal(got, want) {
		t.Fatalf("words(16 bytes) = %#x, want %#x", got, want)
	}
}

// TestWordsSingleByte: the example from page 4 of the paper. The lone byte
// sits in the low position and the length byte 0x01 in the high position.
func TestWordsSingleByte(t *testing.T) {
	got := collectWords([]byte{0xAF})
	want := []uint64{0x01000000000000AF}
	if !slices.Equal(got, want) {
		t.Fatalf("words([0xAF]) = %#x, want %#x", got, want)
	}
}

// TestWordsEmpty: an empty message yields exactly the padding word, which is
// all zero because the length byte is 0.
func TestWordsEmpty(t *testing.T) {
	got := collectWords(nil)
	want := []uint64{0}
	if !slices.Equal(got, want) {
		t.Fatalf("words(nil) = %#x, want %#x", got, want)
	}
}

// TestWordsCount verifies the padding invariant: every message of length L
// chunks into exactly L/8 full words plus one padding word.
func TestWordsCount(t *testing.T) {
	rng := newTestRNG(t)
	for l := 0; l <= 256; l++ {
		msg := make([]byte, l)
		fillFromRNG(rng, msg)
		if got, want := len(collectWords(msg)), l/8+1; got != want {
			t.Fatalf("len %d: %d words, want %d", l, got, want)
		}
	}
}

// TestWordsLengthByteWraps: the padding word encodes the length mod 256.
func TestWordsLengthByteWraps(t *testing.T) {
	msg := make([]byte, 256)
	w := collectWords(msg)
	if last := w[len(w)-1]; last != 0 {
		t.Fatalf("padding word for 256-byte message = %#x, want 0 (length byte wraps)", last)
	}
}

// TestWordsEarlyStop: the sequence honors a consumer that stops early.
func TestWordsEarlyStop(t *testing.T) {
	msg := make([]byte, 64)
	var n int
	for range words(msg) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("consumed %d words, want 3", n)
	}
}
