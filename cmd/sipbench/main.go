// Sipbench measures SipHash throughput across message sizes and compares it
// against the non-cryptographic hashes commonly used in the same role.
//
// Usage:
//
//	go run ./cmd/sipbench -iters 2000000
//
// Flags:
//
//	-iters  Hash invocations per (function, size) cell (default: 1,000,000)
//	-sizes  Comma-separated message sizes in bytes
package main

import (
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	"github.com/tamirms/siphash"
)

// sink defeats dead-code elimination of the measured hash calls.
var sink uint64

func main() {
	itersFlag := flag.Int("iters", 1_000_000, "hash invocations per measurement")
	sizesFlag := flag.String("sizes", "8,16,64,256,1024,8192", "comma-separated message sizes")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sipbench: invalid -sizes: %v\n", err)
		os.Exit(1)
	}

	key := siphash.NewKey(mrand.Uint64(), mrand.Uint64())
	hashes := []struct {
		name string
		fn   func(msg []byte) uint64
	}{
		{"siphash-2-4", func(msg []byte) uint64 { return siphash.Sum64(key, msg) }},
		{"siphash-4-8", func(msg []byte) uint64 { return siphash.Sum48(key, msg) }},
		{"siphash-2-4/128", func(msg []byte) uint64 { return siphash.Sum128(key, msg).Lo }},
		{"xxhash64", xxhash.Sum64},
		{"xxh3", xxh3.Hash},
		{"murmur3", murmur3.Sum64},
	}

	fmt.Printf("%-16s %8s %12s %12s\n", "hash", "size", "ns/op", "MB/s")
	for _, size := range sizes {
		msg := make([]byte, size)
		for i := 0; i+8 <= size; i += 8 {
			v := mrand.Uint64()
			for j := 0; j < 8; j++ {
				msg[i+j] = byte(v >> (j * 8))
			}
		}
		for _, h := range hashes {
			nsPerOp := measure(h.fn, msg, *itersFlag)
			mbps := float64(size) / nsPerOp * 1e3
			fmt.Printf("%-16s %8d %12.1f %12.0f\n", h.name, size, nsPerOp, mbps)
		}
	}
}

func measure(fn func([]byte) uint64, msg []byte, iters int) float64 {
	// Warm up caches and branch predictors before timing.
	for i := 0; i < 1000; i++ {
		sink ^= fn(msg)
	}
	start := time.Now()
	for i := 0; i < iters; i++ {
		sink ^= fn(msg)
	}
	elapsed := time.Since(start)
	return float64(elapsed.Nanoseconds()) / float64(iters)
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for part := range strings.SplitSeq(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative size %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
