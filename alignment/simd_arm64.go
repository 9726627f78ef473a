//go:build arm64

package alignment

// The arm64 baseline guarantees NEON, 128-bit registers.
const simdBlockSize = 16
