package mem

import (
	"fmt"

	"github.com/JohnCGriffin/overflow"
)

// Allocation is a single aligned allocation.
//
// The zero Allocation is the empty allocation: no memory is held and
// Free releases nothing.
type Allocation struct {
	// Data is the aligned window. len(Data) is the requested size and
	// &Data[0] is divisible by the requested alignment.
	Data []byte

	// Raw is the full backing block the allocator obtained, of which
	// Data is a sub-slice. Free releases Raw, never a value re-derived
	// from Data.
	Raw []byte
}

// Allocator hands out and releases aligned memory.
//
// Implementations panic on failure instead of returning an error:
// a request the platform cannot represent or satisfy is a fatal resource
// condition, not something callers retry.
type Allocator interface {
	// Allocate returns an Allocation of size bytes whose Data starts at
	// an address divisible by align. align must be a power of two.
	// A size of zero returns the empty Allocation without allocating.
	Allocate(size, align int) Allocation

	// Free releases an Allocation previously returned by Allocate on the
	// same allocator. Freeing the empty Allocation is a no-op.
	Free(alloc Allocation)
}

// checkRequest validates the (size, align) pair shared by all allocators.
func checkRequest(size, align int) {
	if size < 0 {
		panic(fmt.Sprintf("mem: invalid allocation size %d", size))
	}
	if align <= 0 || align&(align-1) != 0 {
		panic(fmt.Sprintf("mem: alignment %d is not a power of two", align))
	}
}

// GoAllocator allocates from the Go heap. It over-allocates by one
// alignment unit and shifts the window to the boundary, so the garbage
// collector keeps the backing array alive through Raw and Free has
// nothing to do.
type GoAllocator struct{}

// NewGoAllocator returns an allocator backed by the Go heap.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

// Allocate implements Allocator.
func (*GoAllocator) Allocate(size, align int) Allocation {
	checkRequest(size, align)

	if size == 0 {
		return Allocation{}
	}

	total, ok := overflow.Add(size, align)
	if !ok {
		panic(fmt.Sprintf("mem: allocation of %d bytes aligned to %d overflows the address space", size, align))
	}

	raw := make([]byte, total)
	off := alignOffset(addressOf(raw), align)

	return Allocation{
		Data: raw[off : off+size : off+size],
		Raw:  raw,
	}
}

// Free implements Allocator. The garbage collector reclaims the backing
// array once the Allocation is dropped.
func (*GoAllocator) Free(Allocation) {}

// DefaultAllocator is the allocator used when none is configured.
var DefaultAllocator Allocator = NewGoAllocator()
