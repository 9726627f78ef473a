package aligned

import (
	"bytes"

	"github.com/zeebo/xxh3"
)

// Content semantics: buffers, views and blocks compare, order and hash
// by their byte contents, never by address. Two buffers with equal
// contents hash identically even when their alignments differ, which
// keeps the hash/equality contract intact for map keys.

// Equal reports whether two buffers hold the same bytes.
func (b *Bytes[A]) Equal(other *Bytes[A]) bool {
	return bytes.Equal(b.alloc.Data, other.alloc.Data)
}

// EqualBytes reports whether the buffer's contents equal p.
func (b *Bytes[A]) EqualBytes(p []byte) bool {
	return bytes.Equal(b.alloc.Data, p)
}

// Compare lexicographically compares the contents of two buffers, with
// the same result convention as the bytes package.
func (b *Bytes[A]) Compare(other *Bytes[A]) int {
	return bytes.Compare(b.alloc.Data, other.alloc.Data)
}

// Hash returns a 64-bit content hash of the buffer.
func (b *Bytes[A]) Hash() uint64 {
	return xxh3.Hash(b.alloc.Data)
}

// Equal reports whether two views hold the same bytes.
func (s Slice[A]) Equal(other Slice[A]) bool {
	return bytes.Equal(s.data, other.data)
}

// EqualBytes reports whether the view's contents equal p.
func (s Slice[A]) EqualBytes(p []byte) bool {
	return bytes.Equal(s.data, p)
}

// Compare lexicographically compares the contents of two views.
func (s Slice[A]) Compare(other Slice[A]) int {
	return bytes.Compare(s.data, other.data)
}

// Hash returns a 64-bit content hash of the view.
func (s Slice[A]) Hash() uint64 {
	return xxh3.Hash(s.data)
}

// EqualBytes reports whether the block's contents equal p.
func (b Block[A]) EqualBytes(p []byte) bool {
	return b.slice.EqualBytes(p)
}

// Hash returns a 64-bit content hash of the block.
func (b Block[A]) Hash() uint64 {
	return b.slice.Hash()
}
