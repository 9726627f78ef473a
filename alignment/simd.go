package alignment

// SimdBlock is the alignment to the width of the widest SIMD register the
// build targets. The width is fixed at build time from the target
// architecture and microarchitecture level; it does not depend on the CPU
// the program later runs on.
//
// Selected widths:
//
//   - amd64, GOAMD64=v4 (AVX-512): 64 bytes
//   - amd64, GOAMD64=v3 (AVX2): 32 bytes
//   - amd64, GOAMD64=v1/v2 (SSE2 baseline): 16 bytes
//   - arm64 (NEON): 16 bytes
//
// Building for any other architecture fails to compile: no build-tagged
// file defines the width there, and failing the build is preferred over
// silently weakening the guarantee that consumers size their kernels by.
type SimdBlock struct{}

// Size returns the build-selected SIMD register width in bytes.
func (SimdBlock) Size() int {
	return simdBlockSize
}
