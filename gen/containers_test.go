package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/random"
)

func TestContainerLengthScalesWithSize(t *testing.T) {
	r := random.FromSeed(10)
	g := gen.Container(gen.InRangeSigned(0, 10))
	s := g.Generate(&r, 0)
	assert.Empty(t, s.Value())
}

func TestContainerShrinkOffersEmptyFirst(t *testing.T) {
	r := random.FromSeed(11)
	g := gen.Container(gen.InRangeSigned(0, 100))
	var s = g.Generate(&r, 40)
	for len(s.Value()) == 0 {
		left, right := r.Split()
		r = left
		s = g.Generate(&right, 40)
	}
	children := s.Shrinks()
	first, ok := children.Next()
	assert.True(t, ok)
	assert.Empty(t, first.Value())
}

func TestFixedContainerPreservesLength(t *testing.T) {
	r := random.FromSeed(12)
	g := gen.FixedContainer(gen.InRangeSigned(0, 100), 5)
	s := g.Generate(&r, 40)
	assert.Len(t, s.Value(), 5)
	children := s.Shrinks()
	for {
		c, ok := children.Next()
		if !ok {
			break
		}
		assert.Len(t, c.Value(), 5)
	}
}

func TestUniqueProducesDistinctElements(t *testing.T) {
	r := random.FromSeed(13)
	g := gen.Unique(gen.InRangeSigned(0, 1000))
	s := g.Generate(&r, 20)
	seen := map[int]bool{}
	for _, v := range s.Value() {
		assert.False(t, seen[v])
		seen[v] = true
	}
}

func TestUniqueShrinksStayDistinct(t *testing.T) {
	r := random.FromSeed(14)
	g := gen.Unique(gen.InRangeSigned(0, 1000))
	s := g.Generate(&r, 20)
	children := s.Shrinks()
	for {
		c, ok := children.Next()
		if !ok {
			break
		}
		seen := map[int]bool{}
		for _, v := range c.Value() {
			assert.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestUniqueByUsesProjectedKey(t *testing.T) {
	type pair struct{ k, v int }
	r := random.FromSeed(15)
	base := gen.Map(gen.InRangeSigned(0, 5), func(v int) pair { return pair{k: v % 3, v: v} })
	g := gen.UniqueBy(base, func(p pair) int { return p.k })
	s := g.Generate(&r, 2)
	assert.LessOrEqual(t, len(s.Value()), 3)
}
