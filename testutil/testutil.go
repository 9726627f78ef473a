package testutil

import (
	"math/rand"
	"testing"
)

// AssertAligned fails t unless addr is divisible by align.
func AssertAligned(t *testing.T, addr uintptr, align int) {
	t.Helper()

	if addr%uintptr(align) != 0 {
		t.Errorf("address %#x is not aligned to %d bytes", addr, align)
	}
}

// Pattern returns n deterministic pseudo-random bytes for the given
// seed. Equal seeds always produce equal bytes.
func Pattern(seed int64, n int) []byte {
	rng := rand.New(rand.NewSource(seed))

	p := make([]byte, n)
	for i := range p {
		p[i] = byte(rng.Intn(256))
	}

	return p
}

// Ascending returns the bytes 0, 1, ..., n-1 truncated to byte range.
func Ascending(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i)
	}

	return p
}
