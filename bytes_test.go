package aligned_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/aligned"
	"github.com/hupe1980/aligned/alignment"
	"github.com/hupe1980/aligned/mem"
	"github.com/hupe1980/aligned/testutil"
)

func testAlignmentInvariant[A alignment.Alignment](t *testing.T) {
	var a A
	size := a.Size()

	paths := map[string]func() *aligned.Bytes[A]{
		"New":            func() *aligned.Bytes[A] { return aligned.New[A](1024) },
		"NewZeroed":      func() *aligned.Bytes[A] { return aligned.NewZeroed[A](1024) },
		"NewInitialized": func() *aligned.Bytes[A] { return aligned.NewInitialized[A](1024, func(i int) byte { return byte(i) }) },
		"NewPadded":      func() *aligned.Bytes[A] { return aligned.NewPadded[A](testutil.Pattern(1, 100)) },
		"From":           func() *aligned.Bytes[A] { return aligned.From[A](testutil.Pattern(2, 100)) },
		"FromString":     func() *aligned.Bytes[A] { return aligned.FromString[A]("some unaligned input") },
		"ZeroLength":     func() *aligned.Bytes[A] { return aligned.NewZeroed[A](0) },
	}

	for name, construct := range paths {
		t.Run(name, func(t *testing.T) {
			b := construct()
			testutil.AssertAligned(t, b.Addr(), size)
			assert.Equal(t, size, b.AlignmentSize())
		})
	}
}

func TestAlignmentInvariant(t *testing.T) {
	t.Run("One", testAlignmentInvariant[alignment.One])
	t.Run("Eight", testAlignmentInvariant[alignment.Eight])
	t.Run("SixtyFour", testAlignmentInvariant[alignment.SixtyFour])
	t.Run("TwoTo15", testAlignmentInvariant[alignment.TwoTo[alignment.N15]])
	t.Run("Page", testAlignmentInvariant[alignment.Page])
	t.Run("SimdBlock", testAlignmentInvariant[alignment.SimdBlock])
	t.Run("TwoSimdBlocks", testAlignmentInvariant[alignment.TwoSimdBlocks])
	t.Run("TwicePage", testAlignmentInvariant[alignment.Twice[alignment.Page]])
}

func TestNewPaddedLaw(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 63, 64, 65, 1000} {
		p := testutil.Pattern(int64(n), n)
		b := aligned.NewPadded[alignment.SixtyFour](p)

		assert.Zero(t, b.Len()%64)
		assert.GreaterOrEqual(t, b.Len(), n)
		assert.Less(t, b.Len()-n, 64)
		assert.Equal(t, p, b.Bytes()[:n])

		for _, pad := range b.Bytes()[n:] {
			require.Zero(t, pad)
		}
	}
}

func TestNewPaddedEmptyInput(t *testing.T) {
	b := aligned.NewPadded[alignment.SixtyFour](nil)

	assert.Zero(t, b.Len())
	assert.True(t, b.IsEmpty())
}

func TestFromRoundTrip(t *testing.T) {
	p := testutil.Pattern(42, 1000)
	b := aligned.From[alignment.Page](p)

	assert.Equal(t, len(p), b.Len())
	assert.True(t, b.EqualBytes(p))
}

func TestFromMisalignedSource(t *testing.T) {
	// Force a source that does not start on the boundary; the copy must
	// still land on one.
	backing := testutil.Pattern(7, 129)
	source := backing[1:]

	b := aligned.From[alignment.SixtyFour](source)

	testutil.AssertAligned(t, b.Addr(), 64)
	assert.True(t, b.EqualBytes(source))
}

func TestNewInitializedPattern(t *testing.T) {
	b := aligned.NewInitialized[alignment.Page](8, func(i int) byte { return byte(i % 2) })

	assert.Equal(t, []byte{0, 1, 0, 1, 0, 1, 0, 1}, b.Bytes())
}

func TestZeroLengthBuffer(t *testing.T) {
	b := aligned.NewZeroed[alignment.Eight](0)

	assert.Zero(t, b.Len())
	assert.True(t, b.IsEmpty())
	assert.NotZero(t, b.Addr())
	testutil.AssertAligned(t, b.Addr(), 8)
}

func TestZeroedBufferWithTwoTo7(t *testing.T) {
	b := aligned.NewZeroed[alignment.TwoTo[alignment.N7]](1024)

	assert.Equal(t, 128, b.AlignmentSize())
	testutil.AssertAligned(t, b.Addr(), 128)

	for _, v := range b.Bytes() {
		require.Zero(t, v)
	}
}

func TestMutationThroughBytes(t *testing.T) {
	b := aligned.New[alignment.SixtyFour](64)
	for i := range b.Bytes() {
		b.Bytes()[i] = 1
	}

	for _, v := range b.Bytes() {
		require.EqualValues(t, 1, v)
	}
}

func TestClone(t *testing.T) {
	b := aligned.From[alignment.SixtyFour](testutil.Ascending(100))
	c := b.Clone()

	assert.True(t, b.Equal(c))
	assert.NotEqual(t, b.Addr(), c.Addr())

	// Clones do not share memory.
	c.Bytes()[0] = 0xFF
	assert.False(t, b.Equal(c))
}

func TestReleaseWithCheckedAllocator(t *testing.T) {
	checked := mem.NewCheckedAllocator(mem.NewGoAllocator(), nil)

	b := aligned.NewZeroed[alignment.Page](4096, aligned.WithAllocator(checked))
	assert.Equal(t, 4096, checked.CurrentAlloc())

	b.Release()
	checked.AssertSize(t, 0)

	// Release is idempotent.
	b.Release()
	checked.AssertSize(t, 0)
}

func TestReleaseWithMmapAllocator(t *testing.T) {
	b := aligned.NewZeroed[alignment.Page](1<<20, aligned.WithAllocator(mem.NewMmapAllocator()))

	testutil.AssertAligned(t, b.Addr(), b.AlignmentSize())
	b.Bytes()[0] = 42

	b.Release()
	assert.Zero(t, b.Len())
}

func BenchmarkNewZeroed(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = aligned.NewZeroed[alignment.SixtyFour](4096)
	}
}
