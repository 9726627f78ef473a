//go:build amd64

package alignment

import "github.com/klauspost/cpuid/v2"

// SimdRuntimeSupported reports whether the executing CPU implements the
// instruction set the build-selected SimdBlock width assumes. A binary
// built with GOAMD64=v4 and run on an AVX2-only machine reports false
// here long before a vector kernel faults.
//
// This is a diagnostic only. The SimdBlock width is a build-time constant
// and never changes based on this report.
func SimdRuntimeSupported() bool {
	switch simdBlockSize {
	case 64:
		return cpuid.CPU.Supports(cpuid.AVX512F)
	case 32:
		return cpuid.CPU.Supports(cpuid.AVX2)
	default:
		return cpuid.CPU.Supports(cpuid.SSE2)
	}
}
