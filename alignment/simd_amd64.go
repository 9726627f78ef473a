//go:build amd64 && !amd64.v3

package alignment

// The amd64 baseline guarantees SSE2, 128-bit registers.
const simdBlockSize = 16
