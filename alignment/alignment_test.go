package alignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwoToSizes(t *testing.T) {
	tests := []struct {
		name string
		a    Alignment
		want int
	}{
		{name: "N0", a: TwoTo[N0]{}, want: 1},
		{name: "N1", a: TwoTo[N1]{}, want: 2},
		{name: "N2", a: TwoTo[N2]{}, want: 4},
		{name: "N3", a: TwoTo[N3]{}, want: 8},
		{name: "N6", a: TwoTo[N6]{}, want: 64},
		{name: "N7", a: TwoTo[N7]{}, want: 128},
		{name: "N12", a: TwoTo[N12]{}, want: 4096},
		{name: "N15", a: TwoTo[N15]{}, want: 32768},
		{name: "N16", a: TwoTo[N16]{}, want: 65536},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Size())
		})
	}
}

func TestAliases(t *testing.T) {
	assert.Equal(t, 1, One{}.Size())
	assert.Equal(t, 2, Two{}.Size())
	assert.Equal(t, 4, Four{}.Size())
	assert.Equal(t, 8, Eight{}.Size())
	assert.Equal(t, 16, Sixteen{}.Size())
	assert.Equal(t, 32, ThirtyTwo{}.Size())
	assert.Equal(t, 64, SixtyFour{}.Size())
	assert.Equal(t, 128, OneTwentyEight{}.Size())
}

func TestTwiceDoubles(t *testing.T) {
	assert.Equal(t, 2*Four{}.Size(), Twice[Four]{}.Size())
	assert.Equal(t, 2*Page{}.Size(), Twice[Page]{}.Size())
	assert.Equal(t, 4*Four{}.Size(), Twice[Twice[Four]]{}.Size())
}

func TestSizesArePowersOfTwo(t *testing.T) {
	descriptors := []Alignment{
		One{}, Two{}, Four{}, Eight{}, Sixteen{}, ThirtyTwo{}, SixtyFour{},
		OneTwentyEight{}, Page{}, SimdBlock{}, Twice[Eight]{},
		Twice[SimdBlock]{}, Twice[Page]{},
	}

	for _, a := range descriptors {
		size := a.Size()
		assert.Positive(t, size)
		assert.Zero(t, size&(size-1), "size %d is not a power of two", size)
	}
}

func TestSizeIsDeterministic(t *testing.T) {
	descriptors := []Alignment{Eight{}, Page{}, SimdBlock{}, Twice[Page]{}}

	for _, a := range descriptors {
		first := a.Size()
		for range 100 {
			assert.Equal(t, first, a.Size())
		}
	}
}
