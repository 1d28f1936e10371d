package fast

import (
	"bytes"
	"encoding/binary"

	"github.com/klauspost/cpuid/v2"
)

// hasSIMD gates the word-parallel scan path the same way
// checksum.hasSIMD does: on CPUs without SSE2/ASIMD we fall back to
// bytes.IndexByte, whose assembly is itself vectorized on those
// platforms, so the fallback is never slower than a naive scalar loop.
var hasSIMD = cpuid.CPU.Supports(cpuid.SSE2) || cpuid.CPU.Supports(cpuid.ASIMD)

const (
	loMask uint64 = 0x0101010101010101
	hiMask uint64 = 0x8080808080808080
)

// hasZeroByte reports whether any of the 8 bytes packed into w is
// zero, using the classic SWAR ("SIMD within a register") bit trick:
// subtracting 1 from each lane borrows into the high bit of any lane
// that was zero, and ANDing with ^w masks out lanes where the borrow
// came from a genuine non-zero high bit instead.
func hasZeroByte(w uint64) bool {
	return (w-loMask)&^w&hiMask != 0
}

// scanByte finds the first occurrence of target in b, treating each
// 8-byte window as one lane-packed "vector" register: target is
// splatted across all 8 lanes, XORed against the window (which zeroes
// any matching lane), then hasZeroByte tests all 8 lanes in one
// comparison. A hit degrades to a scalar search within just that
// 8-byte window; a miss advances a full word at a time. Tail bytes
// shorter than a full word fall back to scalar search; on CPUs without
// SSE2/ASIMD the whole scan is delegated to bytes.IndexByte (spec §4.6
// / §9's "portable SIMD facility").
func scanByte(b []byte, target byte) int {
	if !hasSIMD {
		return bytes.IndexByte(b, target)
	}
	n := len(b)
	splat := loMask * uint64(target)
	i := 0
	for ; i+8 <= n; i += 8 {
		w := binary.LittleEndian.Uint64(b[i : i+8])
		if hasZeroByte(w ^ splat) {
			for j := 0; j < 8; j++ {
				if b[i+j] == target {
					return i + j
				}
			}
		}
	}
	for ; i < n; i++ {
		if b[i] == target {
			return i
		}
	}
	return -1
}
