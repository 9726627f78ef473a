// Package alignment defines the alignment descriptors used as type
// arguments for aligned buffers and views.
//
// A descriptor is a zero-sized marker type whose Size method returns the
// alignment boundary in bytes. Size is deterministic and always a power of
// two; every construction in this package enforces that at the point the
// size is computed, so code generic over a descriptor can rely on it.
//
// # Descriptors
//
//   - TwoTo[N]: fixed 2^N alignment, with aliases One through OneTwentyEight
//   - Page: the operating system page size, resolved once per process
//   - SimdBlock: the SIMD register width selected at build time
//   - Twice[A]: twice the alignment of A
//   - TwoSimdBlocks: twice the SIMD register width
//
// # Example
//
//	var p alignment.Page
//	fmt.Println(p.Size() == os.Getpagesize()) // true
package alignment
