package shrinkable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucaskalb/gorapid/seq"
	"github.com/lucaskalb/gorapid/shrinkable"
)

func halvingStep(v int) seq.Seq[int] {
	if v == 0 {
		return seq.Empty[int]()
	}
	out := []int{0}
	for x := v / 2; x != 0; x /= 2 {
		out = append(out, x)
	}
	return seq.FromSlice(out)
}

func TestNoSelfShrink(t *testing.T) {
	s := shrinkable.ShrinkRecur(100, halvingStep)
	children := s.Shrinks()
	for {
		c, ok := children.Next()
		if !ok {
			break
		}
		assert.NotEqual(t, s.Value(), c.Value())
	}
}

func TestMapFunctoriality(t *testing.T) {
	s := shrinkable.ShrinkRecur(40, halvingStep)
	f := func(x int) int { return x + 1 }
	g := func(x int) int { return x * 2 }

	left := shrinkable.Map(shrinkable.Map(s, f), g)
	right := shrinkable.Map(s, func(x int) int { return g(f(x)) })

	assert.Equal(t, left.Value(), right.Value())

	lc := seq.ToSlice(left.Shrinks())
	rc := seq.ToSlice(right.Shrinks())
	assert.Equal(t, len(lc), len(rc))
	for i := range lc {
		assert.Equal(t, lc[i].Value(), rc[i].Value())
	}
}

func TestShrinkRecurFixpoint(t *testing.T) {
	s := shrinkable.ShrinkRecur(16, halvingStep)
	assert.Equal(t, 16, s.Value())

	expected := seq.ToSlice(halvingStep(16))
	got := seq.ToSlice(s.Shrinks())
	assert.Equal(t, len(expected), len(got))
	for i := range expected {
		assert.Equal(t, expected[i], got[i].Value())
	}
}

func TestFindLocalMinDescendsToMinimum(t *testing.T) {
	s := shrinkable.ShrinkRecur(100, halvingStep)
	min, path := shrinkable.FindLocalMin(s, func(v int) bool { return v >= 1 })
	assert.Equal(t, 1, min)
	assert.NotEmpty(t, path)
}

func TestWalkPathReproducesFindLocalMin(t *testing.T) {
	s := shrinkable.ShrinkRecur(100, halvingStep)
	min, path := shrinkable.FindLocalMin(s, func(v int) bool { return v >= 1 })

	node, ok := shrinkable.WalkPath(s, path)
	assert.True(t, ok)
	assert.Equal(t, min, node.Value())
}

func TestWalkPathOutOfRange(t *testing.T) {
	s := shrinkable.ShrinkRecur(4, halvingStep)
	_, ok := shrinkable.WalkPath(s, []int{99})
	assert.False(t, ok)
}

func TestFilterDropsFailingRoot(t *testing.T) {
	s := shrinkable.Just(3)
	_, ok := shrinkable.Filter(s, func(v int) bool { return v > 10 })
	assert.False(t, ok)
}

func TestFilterKeepsOnlyPassingChildren(t *testing.T) {
	s := shrinkable.ShrinkRecur(16, halvingStep)
	filtered, ok := shrinkable.Filter(s, func(v int) bool { return v != 2 })
	assert.True(t, ok)
	for _, c := range seq.ToSlice(filtered.Shrinks()) {
		assert.NotEqual(t, 2, c.Value())
	}
}

func TestPairLexicographicShrink(t *testing.T) {
	a := shrinkable.ShrinkRecur(8, halvingStep)
	b := shrinkable.ShrinkRecur(8, halvingStep)
	p := shrinkable.Pair(a, b)

	first, ok := p.Shrinks().Next()
	assert.True(t, ok)
	assert.Equal(t, 8, first.Value().Second)
	assert.NotEqual(t, 8, first.Value().First)
}

func TestMapCatShrinksBoundFirst(t *testing.T) {
	seed := shrinkable.ShrinkRecur(4, halvingStep)
	bound := shrinkable.MapCat(seed, func(v int) shrinkable.Shrinkable[int] {
		return shrinkable.ShrinkRecur(v*100, halvingStep)
	})

	assert.Equal(t, 400, bound.Value())
	first, ok := bound.Shrinks().Next()
	assert.True(t, ok)
	// The bound subtree's own shrinks (halvingStep(400): 0, 200, 100, 50,
	// ...) come before the seed's shrinks rebound through f, so the first
	// candidate is 0, a multiple of 100.
	assert.Equal(t, 0, first.Value()%100)
}
