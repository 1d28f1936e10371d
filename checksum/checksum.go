// Package checksum implements the FIX modulo-256 checksum (spec §4.2):
// the arithmetic sum of every byte in a message, taken mod 256, with a
// block-accelerated path for larger payloads.
package checksum

import "github.com/klauspost/cpuid/v2"

// Sum returns the scalar reference checksum: one-byte-at-a-time
// accumulation. It is the correctness oracle the other two entry
// points are verified against.
func Sum(b []byte) byte {
	var total uint32
	for _, c := range b {
		total += uint32(c)
	}
	return byte(total)
}

// blockSize picks the word-at-a-time chunk width for n bytes, per
// spec §4.2's size bands. Only used when the CPU exposes wide-enough
// general-purpose load/XOR support; Fast otherwise falls back to Sum.
func blockSize(n int) int {
	switch {
	case n < 100:
		return 16
	case n <= 500:
		return 32
	default:
		return 64
	}
}

// hasSIMD reports whether the current CPU supports the word-parallel
// accumulation path Fast uses. SSE2 is universal on amd64 but the
// feature gate mirrors the convention used throughout the corpus
// (klauspost/cpuid-gated fast paths) so the dispatch generalizes to
// other architectures where the wide path may not be profitable.
var hasSIMD = cpuid.CPU.Supports(cpuid.SSE2) || cpuid.CPU.Supports(cpuid.ASIMD)

// Fast returns the same value as Sum but processes full chunks of
// blockSize(len(b)) bytes at a time. Within a chunk, bytes are widened
// into two uint32 accumulators, one per half of the chunk, before
// being folded into a 32-bit running total, avoiding per-byte overflow
// across a full chunk. Any tail shorter than a chunk is summed scalar.
func Fast(b []byte) byte {
	if !hasSIMD || len(b) < 16 {
		return Sum(b)
	}

	k := blockSize(len(b))
	var total uint32
	i := 0
	for ; i+k <= len(b); i += k {
		total += sumChunk(b[i : i+k])
	}
	for ; i < len(b); i++ {
		total += uint32(b[i])
	}
	return byte(total)
}

// sumChunk sums exactly len(chunk) bytes using two lane accumulators,
// the word-parallel-in-a-register technique available without
// platform intrinsics: each accumulator widens its half of the lanes
// so no single lane can overflow a byte before the final fold.
func sumChunk(chunk []byte) uint32 {
	var lo, hi uint32
	n := len(chunk)
	half := n / 2
	for i := 0; i < half; i++ {
		lo += uint32(chunk[i])
	}
	for i := half; i < n; i++ {
		hi += uint32(chunk[i])
	}
	return lo + hi
}

// Range returns the same value as Sum, computed directly over a
// pointer-range style slice expression (ptr, ptr+n). It exists as a
// distinct entry point for callers — principally the Fast Builder's
// in-place finalization — that already hold a raw sub-slice of a
// larger owned buffer and want to avoid any intermediate copy or
// bounds-check beyond the one Go's slicing performs.
func Range(buf []byte, start, end int) byte {
	return Fast(buf[start:end])
}
