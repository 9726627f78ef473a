package aligned

import (
	"fmt"
	"unsafe"

	"github.com/JohnCGriffin/overflow"

	"github.com/hupe1980/aligned/alignment"
	"github.com/hupe1980/aligned/mem"
)

// Bytes owns a block of bytes whose starting address is divisible by
// A.Size(). The guarantee is established once, when the block is
// allocated, and every view derived from the buffer inherits it.
//
// The zero-length buffer holds no allocation; its address is the
// alignment size itself, a non-zero multiple of the boundary that is
// never dereferenced.
//
// A Bytes is exclusively owned. Concurrent reads through views are safe;
// mutation through Bytes() must not overlap any other access to the same
// bytes.
type Bytes[A alignment.Alignment] struct {
	alloc     mem.Allocation
	allocator mem.Allocator
}

// New creates a buffer of size bytes without guaranteeing its contents.
//
// The contents are indeterminate until written: callers must initialize
// every byte they intend to read. The constructor exists to skip
// redundant zeroing when the caller overwrites the whole buffer anyway;
// if that is not the case, use NewZeroed.
func New[A alignment.Alignment](size int, optFns ...Option) *Bytes[A] {
	o := applyOptions(optFns)

	var a A

	return &Bytes[A]{
		alloc:     o.allocator.Allocate(size, a.Size()),
		allocator: o.allocator,
	}
}

// NewZeroed creates a buffer of size zero-filled bytes. A size of zero
// returns the zero-length buffer without allocating.
func NewZeroed[A alignment.Alignment](size int, optFns ...Option) *Bytes[A] {
	b := New[A](size, optFns...)
	clear(b.alloc.Data)

	return b
}

// NewInitialized creates a buffer of size bytes where byte i holds
// f(i). Bytes are initialized left to right; the buffer is fully
// initialized on return.
func NewInitialized[A alignment.Alignment](size int, f func(i int) byte, optFns ...Option) *Bytes[A] {
	b := New[A](size, optFns...)
	for i := range b.alloc.Data {
		b.alloc.Data[i] = f(i)
	}

	return b
}

// NewPadded copies p into a buffer whose length is the smallest multiple
// of the alignment size that fits p, zero-filling the padding. An empty
// input returns the zero-length buffer.
//
// Padding guarantees the block iterator yields only full blocks, which
// kernels relying on whole-register loads need.
func NewPadded[A alignment.Alignment](p []byte, optFns ...Option) *Bytes[A] {
	if len(p) == 0 {
		return New[A](0, optFns...)
	}

	var a A
	size := len(p)

	pad := 0
	if rem := size % a.Size(); rem != 0 {
		pad = a.Size() - rem
	}

	padded, ok := overflow.Add(size, pad)
	if !ok {
		panic(fmt.Sprintf("aligned: padded size of %d bytes overflows the address space", size))
	}

	b := NewZeroed[A](padded, optFns...)
	copy(b.alloc.Data, p)

	return b
}

// From copies p into a freshly allocated aligned buffer of exactly
// len(p) bytes. It never pads.
func From[A alignment.Alignment](p []byte, optFns ...Option) *Bytes[A] {
	b := New[A](len(p), optFns...)
	copy(b.alloc.Data, p)

	return b
}

// FromString copies s into a freshly allocated aligned buffer.
func FromString[A alignment.Alignment](s string, optFns ...Option) *Bytes[A] {
	b := New[A](len(s), optFns...)
	copy(b.alloc.Data, s)

	return b
}

// Len returns the length of the buffer in bytes.
func (b *Bytes[A]) Len() int { return len(b.alloc.Data) }

// IsEmpty reports whether the buffer has length zero.
func (b *Bytes[A]) IsEmpty() bool { return len(b.alloc.Data) == 0 }

// AlignmentSize returns A.Size().
//
// This reflects the guarantee carried by the type, not the maximal
// alignment of the actual address, which may be higher.
func (b *Bytes[A]) AlignmentSize() int {
	var a A
	return a.Size()
}

// Addr returns the starting address of the buffer as an integer. It is
// always a non-zero multiple of A.Size(); for the zero-length buffer it
// is the alignment size itself and must not be dereferenced.
func (b *Bytes[A]) Addr() uintptr {
	if len(b.alloc.Data) == 0 {
		var a A
		return uintptr(a.Size())
	}

	return uintptr(unsafe.Pointer(&b.alloc.Data[0]))
}

// Bytes returns the buffer's contents as a plain byte slice. Writing
// through the slice is how the owner mutates the buffer.
func (b *Bytes[A]) Bytes() []byte { return b.alloc.Data }

// Slice returns a view over the whole buffer. The view borrows the
// buffer's memory and must not outlive Release.
func (b *Bytes[A]) Slice() Slice[A] { return Slice[A]{data: b.alloc.Data} }

// Blocks returns an iterator over consecutive aligned blocks of the
// buffer, equivalent to b.Slice().Blocks().
func (b *Bytes[A]) Blocks() *BlockIterator[A] { return b.Slice().Blocks() }

// Clone returns a new buffer with the same contents, allocated by the
// same allocator.
func (b *Bytes[A]) Clone() *Bytes[A] {
	return From[A](b.alloc.Data, WithAllocator(b.allocator))
}

// Release returns the buffer's memory to its allocator, using the exact
// allocation recorded at construction. The first call frees; further
// calls are no-ops. No view derived from the buffer may be used after
// Release.
func (b *Bytes[A]) Release() {
	if b.allocator != nil && b.alloc.Raw != nil {
		b.allocator.Free(b.alloc)
	}

	b.alloc = mem.Allocation{}
}
