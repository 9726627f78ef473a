package aligned

import (
	"fmt"
	"unsafe"

	"github.com/JohnCGriffin/overflow"

	"github.com/hupe1980/aligned/alignment"
)

// Slice is a borrowed view of a contiguous byte range whose starting
// address is divisible by A.Size().
//
// A Slice is only ever derived from a Bytes buffer or from another Slice
// through an operation that provably preserves the guarantee: offsetting
// by whole alignment units, narrowing to a prefix, or relaxing to a
// weaker descriptor. There is deliberately no way to wrap arbitrary
// bytes in a Slice.
//
// The zero Slice is the empty view; its address is the alignment size
// itself (non-zero, trivially aligned, never dereferenced).
type Slice[A alignment.Alignment] struct {
	data []byte
}

// Len returns the length of the view in bytes.
func (s Slice[A]) Len() int { return len(s.data) }

// IsEmpty reports whether the view has length zero.
func (s Slice[A]) IsEmpty() bool { return len(s.data) == 0 }

// AlignmentSize returns A.Size().
//
// This reflects the guarantee carried by the type, not the maximal
// alignment of the actual address, which may be higher.
func (s Slice[A]) AlignmentSize() int {
	var a A
	return a.Size()
}

// Addr returns the starting address of the view as an integer, always a
// non-zero multiple of A.Size().
func (s Slice[A]) Addr() uintptr {
	if s.data == nil {
		var a A
		return uintptr(a.Size())
	}

	// An empty view at the end of its buffer keeps the one-past-the-end
	// address, which is still a multiple of the alignment.
	return uintptr(unsafe.Pointer(unsafe.SliceData(s.data)))
}

// Bytes returns the viewed range as a plain byte slice, sharing memory
// with the underlying buffer.
func (s Slice[A]) Bytes() []byte { return s.data }

// Offset returns the sub-view starting count alignment units further in,
// sharing memory with s. The new view starts a multiple of A.Size()
// bytes after an aligned address, so the guarantee is preserved.
//
// It panics if fewer than count whole alignment units remain; asking for
// more than exists is a logic error, not a recoverable condition.
func (s Slice[A]) Offset(count int) Slice[A] {
	var a A

	off, ok := overflow.Mul(count, a.Size())
	if !ok || count < 0 || off > len(s.data) {
		panic(fmt.Sprintf("aligned: offset %d out of range for slice of %d aligned units", count, len(s.data)/a.Size()))
	}

	return Slice[A]{data: s.data[off:]}
}

// Prefix returns the view narrowed to its first n bytes, sharing memory
// with s. The starting address is unchanged, so the guarantee is
// preserved. It panics if n is out of range.
func (s Slice[A]) Prefix(n int) Slice[A] {
	if n < 0 || n > len(s.data) {
		panic(fmt.Sprintf("aligned: prefix %d out of range for slice of %d bytes", n, len(s.data)))
	}

	return Slice[A]{data: s.data[:n:n]}
}

// Blocks returns an iterator over consecutive aligned blocks of the
// view. Iteration borrows the view; the view itself stays valid and can
// derive further iterators.
func (s Slice[A]) Blocks() *BlockIterator[A] {
	return &BlockIterator[A]{rest: s}
}

// Relax reinterprets a view under the weaker-or-equal descriptor B.
// Because every descriptor size is a power of two, an address divisible
// by the stronger size is automatically divisible by the weaker one, so
// the result views the same bytes at the same address.
//
// It panics if B is stronger than A; a weaker guarantee can never be
// turned into a stronger one by reinterpretation.
func Relax[B, A alignment.Alignment](s Slice[A]) Slice[B] {
	var (
		a A
		b B
	)

	if b.Size() > a.Size() {
		panic(fmt.Sprintf("aligned: cannot relax alignment %d to stronger alignment %d", a.Size(), b.Size()))
	}

	return Slice[B]{data: s.data}
}
