package aligned

import "github.com/hupe1980/aligned/alignment"

// Halves splits a block aligned to twice A into two A-aligned blocks
// without copying. The source address is divisible by 2*A.Size(), so
// both the start and the midpoint are A-aligned.
//
// If the block holds at most A.Size() bytes, the first half is the whole
// block and the second is empty. Otherwise the first half is exactly
// A.Size() bytes and the second holds the remainder.
func Halves[A alignment.Alignment](b Block[alignment.Twice[A]]) (Block[A], Block[A]) {
	var a A
	data := b.slice.data

	if len(data) <= a.Size() {
		return Block[A]{slice: Slice[A]{data: data}}, Block[A]{}
	}

	first := Block[A]{slice: Slice[A]{data: data[:a.Size():a.Size()]}}
	second := Block[A]{slice: Slice[A]{data: data[a.Size():]}}

	return first, second
}

// SplitSimdPair splits a block aligned to two SIMD register widths into
// two SimdBlock-aligned blocks, cutting at exactly SimdBlock's size.
//
// The caller must pass a full-width block: every non-final block from an
// iterator over a TwoSimdBlocks view qualifies. A shorter final block is
// only safe to split when the caller has independently established that
// both halves are adequately sized for its kernel.
func SplitSimdPair(b Block[alignment.TwoSimdBlocks]) (Block[alignment.SimdBlock], Block[alignment.SimdBlock]) {
	return Halves[alignment.SimdBlock](b)
}
