//go:build arm64

package alignment

// SimdRuntimeSupported reports whether the executing CPU implements the
// instruction set the build-selected SimdBlock width assumes. NEON is
// part of the arm64 baseline, so this always holds.
func SimdRuntimeSupported() bool {
	return true
}
