package alignment

// Alignment is implemented by all alignment descriptor types.
//
// Size must return the same value on every call and the value must be a
// power of two. Every descriptor in this package guarantees both; buffers
// and views instantiated with a descriptor trust them without rechecking.
type Alignment interface {
	// Size returns the alignment boundary in bytes.
	Size() int
}

// Exponent is the closed set of exponent markers for the TwoTo family.
// The unexported method keeps the set closed: 2^N stays a power of two
// only because no external type can join the family.
type Exponent interface {
	exponent() uint
}

// Exponent markers for TwoTo. N0 through N16 cover alignments from one
// byte up to 64 KiB.
type (
	N0  struct{}
	N1  struct{}
	N2  struct{}
	N3  struct{}
	N4  struct{}
	N5  struct{}
	N6  struct{}
	N7  struct{}
	N8  struct{}
	N9  struct{}
	N10 struct{}
	N11 struct{}
	N12 struct{}
	N13 struct{}
	N14 struct{}
	N15 struct{}
	N16 struct{}
)

func (N0) exponent() uint  { return 0 }
func (N1) exponent() uint  { return 1 }
func (N2) exponent() uint  { return 2 }
func (N3) exponent() uint  { return 3 }
func (N4) exponent() uint  { return 4 }
func (N5) exponent() uint  { return 5 }
func (N6) exponent() uint  { return 6 }
func (N7) exponent() uint  { return 7 }
func (N8) exponent() uint  { return 8 }
func (N9) exponent() uint  { return 9 }
func (N10) exponent() uint { return 10 }
func (N11) exponent() uint { return 11 }
func (N12) exponent() uint { return 12 }
func (N13) exponent() uint { return 13 }
func (N14) exponent() uint { return 14 }
func (N15) exponent() uint { return 15 }
func (N16) exponent() uint { return 16 }

// TwoTo is the fixed 2^N alignment. All fixed alignments derive from it;
// 64-byte alignment is TwoTo[N6].
type TwoTo[N Exponent] struct{}

// Size returns 2^N. A power of two by construction.
func (TwoTo[N]) Size() int {
	var n N
	return 1 << n.exponent()
}

// Aliases for the common fixed alignments.
type (
	// One is 1-byte alignment; every address satisfies it.
	One = TwoTo[N0]
	// Two is 2-byte alignment, same as uint16.
	Two = TwoTo[N1]
	// Four is 4-byte alignment, same as uint32.
	Four = TwoTo[N2]
	// Eight is 8-byte alignment, same as uint64.
	Eight = TwoTo[N3]
	// Sixteen is 16-byte alignment, one SSE or NEON register.
	Sixteen = TwoTo[N4]
	// ThirtyTwo is 32-byte alignment, one AVX register.
	ThirtyTwo = TwoTo[N5]
	// SixtyFour is 64-byte alignment, one cache line or AVX-512 register.
	SixtyFour = TwoTo[N6]
	// OneTwentyEight is 128-byte alignment.
	OneTwentyEight = TwoTo[N7]
)

// Twice is the alignment to twice the boundary of A.
type Twice[A Alignment] struct{}

// Size returns 2 * A.Size(). A power of two whenever A.Size() is.
func (Twice[A]) Size() int {
	var a A
	return 2 * a.Size()
}

// TwoSimdBlocks is the alignment to two SIMD register widths. Blocks
// aligned to it can be split into two SimdBlock-aligned halves without
// copying.
type TwoSimdBlocks = Twice[SimdBlock]
