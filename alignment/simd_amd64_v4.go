//go:build amd64.v4

package alignment

// GOAMD64=v4 guarantees AVX-512, 512-bit registers.
const simdBlockSize = 64
