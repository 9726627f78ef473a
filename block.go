package aligned

import (
	"iter"

	"github.com/hupe1980/aligned/alignment"
)

// Block is an aligned view whose length never exceeds one alignment
// unit. Blocks are only produced by the block iterator and the splitting
// functions, which is what enforces the length invariant.
//
// The zero Block is the empty block.
type Block[A alignment.Alignment] struct {
	slice Slice[A]
}

// Len returns the length of the block, at most A.Size().
func (b Block[A]) Len() int { return b.slice.Len() }

// IsEmpty reports whether the block has length zero.
func (b Block[A]) IsEmpty() bool { return b.slice.IsEmpty() }

// AlignmentSize returns A.Size().
func (b Block[A]) AlignmentSize() int { return b.slice.AlignmentSize() }

// Addr returns the starting address of the block as an integer, always
// a non-zero multiple of A.Size().
func (b Block[A]) Addr() uintptr { return b.slice.Addr() }

// Bytes returns the block's bytes, sharing memory with the underlying
// buffer.
func (b Block[A]) Bytes() []byte { return b.slice.Bytes() }

// Slice widens the block back to a plain aligned view; the length
// invariant is simply forgotten.
func (b Block[A]) Slice() Slice[A] { return b.slice }

// BlockIterator walks an aligned view and yields consecutive blocks of
// exactly one alignment unit each, with a possibly shorter final block.
// It holds the remaining unconsumed view; once exhausted it stays
// exhausted.
type BlockIterator[A alignment.Alignment] struct {
	rest Slice[A]
}

// Next yields the next block. The second result is false once the view
// is consumed, and stays false on every later call.
func (it *BlockIterator[A]) Next() (Block[A], bool) {
	if it.rest.IsEmpty() {
		return Block[A]{}, false
	}

	var a A

	if it.rest.Len() < a.Size() {
		blk := Block[A]{slice: it.rest}
		it.rest = Slice[A]{}

		return blk, true
	}

	blk := Block[A]{slice: it.rest.Prefix(a.Size())}
	it.rest = it.rest.Offset(1)

	return blk, true
}

// Count returns the exact number of blocks remaining,
// ceil(remaining / A.Size()), without consuming the iterator.
func (it *BlockIterator[A]) Count() int {
	var a A
	return (it.rest.Len() + a.Size() - 1) / a.Size()
}

// Offset skips n blocks, equivalent to offsetting the underlying view
// by n units and deriving a fresh iterator. It panics if fewer than n
// whole units remain.
func (it *BlockIterator[A]) Offset(n int) {
	it.rest = it.rest.Offset(n)
}

// All returns the remaining blocks as a range-over-func sequence,
// consuming the iterator as it goes.
func (it *BlockIterator[A]) All() iter.Seq[Block[A]] {
	return func(yield func(Block[A]) bool) {
		for {
			blk, ok := it.Next()
			if !ok || !yield(blk) {
				return
			}
		}
	}
}
