//go:build amd64.v3 && !amd64.v4

package alignment

// GOAMD64=v3 guarantees AVX2, 256-bit registers.
const simdBlockSize = 32
