package aligned

import "github.com/hupe1980/aligned/alignment"

// Aligned is the common read surface of buffers, views and blocks for
// code that handles them uniformly without caring which descriptor they
// carry.
type Aligned interface {
	// AlignmentSize returns the descriptor's size in bytes.
	AlignmentSize() int
	// Addr returns the starting address, a non-zero multiple of
	// AlignmentSize.
	Addr() uintptr
	// Len returns the length in bytes.
	Len() int
	// IsEmpty reports whether the length is zero.
	IsEmpty() bool
	// Bytes exposes the contents as a plain byte slice.
	Bytes() []byte
}

var (
	_ Aligned = (*Bytes[alignment.Eight])(nil)
	_ Aligned = Slice[alignment.Eight]{}
	_ Aligned = Block[alignment.Eight]{}
)
