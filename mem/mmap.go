package mem

import (
	"fmt"
	"os"

	"github.com/JohnCGriffin/overflow"
)

// MmapAllocator obtains memory through anonymous private mappings,
// outside the Go heap. Mappings are page-aligned by the operating
// system; for alignments above the page size the allocator over-maps
// and shifts the window. Free unmaps the full mapping immediately.
//
// Use it when buffers must be released to the OS deterministically,
// e.g. large page-aligned buffers for direct I/O.
type MmapAllocator struct{}

// NewMmapAllocator returns an allocator backed by anonymous mappings.
func NewMmapAllocator() *MmapAllocator { return &MmapAllocator{} }

// Allocate implements Allocator.
func (*MmapAllocator) Allocate(size, align int) Allocation {
	checkRequest(size, align)

	if size == 0 {
		return Allocation{}
	}

	mapSize := size
	if align > os.Getpagesize() {
		var ok bool
		mapSize, ok = overflow.Add(size, align)
		if !ok {
			panic(fmt.Sprintf("mem: allocation of %d bytes aligned to %d overflows the address space", size, align))
		}
	}

	raw, err := osMapAnon(mapSize)
	if err != nil {
		panic(fmt.Sprintf("mem: anonymous mapping of %d bytes failed: %v", mapSize, err))
	}

	off := alignOffset(addressOf(raw), align)

	return Allocation{
		Data: raw[off : off+size : off+size],
		Raw:  raw,
	}
}

// Free implements Allocator. It unmaps the full mapping recorded in the
// Allocation.
func (*MmapAllocator) Free(alloc Allocation) {
	if alloc.Raw == nil {
		return
	}
	if err := osUnmapAnon(alloc.Raw); err != nil {
		panic(fmt.Sprintf("mem: unmapping %d bytes failed: %v", len(alloc.Raw), err))
	}
}
