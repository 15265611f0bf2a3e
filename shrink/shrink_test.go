package shrink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucaskalb/gorapid/seq"
	"github.com/lucaskalb/gorapid/shrink"
)

func TestSignedNoSelfShrink(t *testing.T) {
	for _, v := range []int{-50, -1, 0, 1, 50, 100} {
		for _, s := range seq.ToSlice(shrink.Signed(v, -100, 100)) {
			assert.NotEqual(t, v, s)
		}
	}
}

func TestSignedPullsToZeroFirst(t *testing.T) {
	got := seq.ToSlice(shrink.Signed(42, -100, 100))
	assert.Equal(t, 0, got[0])
}

func TestSignedNegativeFlipsSignThenShrinksToZero(t *testing.T) {
	got := seq.ToSlice(shrink.Signed(-10, -100, 100))
	assert.Contains(t, got, 10)
	assert.Contains(t, got, 0)
}

func TestSignedRespectsBounds(t *testing.T) {
	for _, v := range seq.ToSlice(shrink.Signed(90, 50, 100)) {
		assert.GreaterOrEqual(t, v, 50)
		assert.LessOrEqual(t, v, 100)
	}
}

func TestUnsignedShrinksTowardZero(t *testing.T) {
	got := seq.ToSlice(shrink.Unsigned[uint](50, 0, 100))
	assert.Equal(t, uint(0), got[0])
	for _, v := range got {
		assert.NotEqual(t, uint(50), v)
	}
}

func TestRealFirstCandidateIsZero(t *testing.T) {
	got := seq.ToSlice(shrink.Real(12.5))
	assert.Equal(t, 0.0, got[0])
}

func TestRealTruncatesNonIntegral(t *testing.T) {
	got := seq.ToSlice(shrink.Real(12.5))
	assert.Contains(t, got, 12.0)
}

func TestBoolShrink(t *testing.T) {
	assert.Equal(t, []bool{false}, seq.ToSlice(shrink.Bool(true)))
	assert.Equal(t, []bool{}, seq.ToSlice(shrink.Bool(false)))
}

func TestRuneShrinksTowardA(t *testing.T) {
	got := seq.ToSlice(shrink.Rune('Z'))
	assert.Contains(t, got, 'z')
	assert.Contains(t, got, 'a')
}

func TestRemoveChunksFirstIsEmpty(t *testing.T) {
	got := seq.ToSlice(shrink.RemoveChunks([]int{1, 2, 3, 4}))
	assert.Empty(t, got[0])
}

func TestRemoveChunksAllContiguousRemovals(t *testing.T) {
	got := seq.ToSlice(shrink.RemoveChunks([]int{1, 2, 3}))
	assert.Contains(t, got, []int{})
	assert.Contains(t, got, []int{3})
	assert.Contains(t, got, []int{1})
	assert.Contains(t, got, []int{1, 2})
}

func TestShrinkElementsSubstitutesOnePosition(t *testing.T) {
	xs := []int{10, 20}
	step := func(v int) seq.Seq[uint] { return shrink.Unsigned(uint(v), 0, 100) }
	wrapped := func(v int) seq.Seq[int] {
		return seq.Map(step(v), func(u uint) int { return int(u) })
	}
	got := seq.ToSlice(shrink.ShrinkElements(xs, wrapped))
	for _, cand := range got {
		assert.Len(t, cand, 2)
	}
}

func TestContainerStartsWithEmpty(t *testing.T) {
	step := func(v int) seq.Seq[int] { return shrink.Signed(v, -100, 100) }
	got := seq.ToSlice(shrink.Container([]int{1, 2, 3}, step))
	assert.Empty(t, got[0])
}
