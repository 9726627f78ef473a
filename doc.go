// Package aligned provides byte buffers and byte-buffer views whose
// memory-address alignment is guaranteed by their type.
//
// SIMD kernels and page-granular I/O need pointers divisible by a
// power-of-two boundary. Instead of checking alignment at every call
// site, this package establishes the guarantee once, at allocation, and
// encodes it in the buffer's type parameter. Every view derived from a
// buffer — sub-slices at whole-unit offsets, fixed-size blocks,
// relaxations to weaker boundaries, block halves — inherits the
// guarantee by construction.
//
// # Buffers
//
// Bytes[A] owns an allocation aligned to A.Size():
//
//	buf := aligned.NewZeroed[alignment.Page](4096)
//	fmt.Println(buf.Addr()%uintptr(buf.AlignmentSize()) == 0) // true
//
// Existing bytes are copied in with From, or padded to a whole number of
// alignment units with NewPadded:
//
//	buf := aligned.From[alignment.SimdBlock]([]byte{1, 2, 3})
//	padded := aligned.NewPadded[alignment.SimdBlock]([]byte{1, 2, 3})
//	fmt.Println(padded.Len() % padded.AlignmentSize()) // 0
//
// New skips initialization for callers that overwrite every byte; its
// contents are indeterminate until written. NewInitialized sets byte i
// to f(i):
//
//	buf := aligned.NewInitialized[alignment.Eight](8, func(i int) byte {
//		return byte(i % 2)
//	})
//	// buf holds 0 1 0 1 0 1 0 1
//
// # Views and blocks
//
// A Slice[A] borrows a buffer's bytes without copying. It can be
// offset by whole alignment units, narrowed to a prefix, relaxed to a
// weaker boundary, or iterated in blocks of one alignment unit each:
//
//	it := buf.Slice().Blocks()
//	for blk := range it.All() {
//		process(blk.Bytes()) // len ≤ AlignmentSize, aligned start
//	}
//
// Blocks aligned to twice a boundary split into two aligned halves for
// pairwise kernels:
//
//	lo, hi := aligned.Halves[alignment.Four](blk)
//
// # Allocators
//
// Buffers allocate through mem.DefaultAllocator (the Go heap) unless an
// allocator is chosen per buffer:
//
//	buf := aligned.NewZeroed[alignment.Page](1<<20,
//		aligned.WithAllocator(mem.NewMmapAllocator()))
//	defer buf.Release()
//
// # Errors
//
// Out-of-range offsets, invalid relaxations and allocation failures are
// contract violations and panic; nothing in this package returns a
// recoverable error. The type system is the first line of defense, the
// panics catch what it cannot express.
package aligned
