// Package ascii classifies tokens as pure-ASCII or not, gating an 8-byte
// SWAR scan instead of a per-byte loop. Most spell-checked tokens in
// Latin-script dictionaries are ASCII, so the fast path pays for itself
// on the common case.
package ascii

import "golang.org/x/sys/cpu"

// fastPath reports whether the host CPU has a feature the Go runtime's
// own string/byte routines already exploit (SSE4.2 on amd64, ARM64's
// baseline NEON): the wide-load SWAR scan below only pays for itself on
// such hosts; elsewhere IsASCII falls back to a plain per-byte loop.
var fastPath = cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD

const highBitMask = 0x8080808080808080

// IsASCII reports whether every byte of s is in [0, 0x7F].
func IsASCII(s string) bool {
	if !fastPath {
		return isASCIIByte(s)
	}
	i := 0
	for ; i+8 <= len(s); i += 8 {
		var w uint64
		for j := 0; j < 8; j++ {
			w |= uint64(s[i+j]) << (8 * j)
		}
		if w&highBitMask != 0 {
			return false
		}
	}
	return isASCIIByte(s[i:])
}

func isASCIIByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
