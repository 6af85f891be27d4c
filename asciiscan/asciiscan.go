// Package asciiscan implements the ASCII fast-path classification from
// spec section 4.5.3: a pure-Go SWAR (SIMD Within A Register) check for
// whether a haystack is entirely ASCII, plus an informational CPU
// feature probe surfaced on Config.CPUFeatures.
//
// Grounded on coregx/simd/ascii_generic.go's 8-bytes-at-a-time uint64
// high-bit check. coregx additionally carries an amd64 AVX2 kernel
// (ascii_amd64.go) behind a runtime dispatch; that assembly-backed path
// is not reproduced here (spec.md's scope is the compilation/matching
// pipeline, not a SIMD kernel library) — Supports() only reports what
// the CPU *could* accelerate, it never changes which code path runs.
package asciiscan

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// IsASCII reports whether every byte in data is in [0x00, 0x7F].
func IsASCII(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}
	if n < 8 {
		return isASCIIBytewise(data)
	}

	const hiBits = uint64(0x8080808080808080)
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[i:])
		if chunk&hiBits != 0 {
			return false
		}
		i += 8
	}
	return isASCIIBytewise(data[i:])
}

func isASCIIBytewise(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// Features reports which CPU capabilities the host could use to
// accelerate byte classification, purely informational: regexcore
// always runs the portable SWAR path above regardless of what this
// reports.
type Features struct {
	AVX2  bool
	ASIMD bool
}

// Supports probes the current CPU's feature flags via golang.org/x/sys/cpu.
func Supports() Features {
	return Features{
		AVX2:  cpu.X86.HasAVX2,
		ASIMD: cpu.ARM64.HasASIMD,
	}
}
