package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/shrinkable"
)

func TestInRangeSignedStaysInBounds(t *testing.T) {
	r := random.FromSeed(1)
	g := gen.InRangeSigned(-10, 10)
	for i := 0; i < 200; i++ {
		left, right := r.Split()
		r = left
		v := g.Generate(&right, 50).Value()
		assert.GreaterOrEqual(t, v, -10)
		assert.Less(t, v, 10)
	}
}

func TestInRangeSignedZeroSizeIsLowerBound(t *testing.T) {
	r := random.FromSeed(2)
	g := gen.InRangeSigned(-5, 5)
	s := g.Generate(&r, 0)
	assert.Equal(t, -5, s.Value())
}

func TestInRangeUnsignedStaysInBounds(t *testing.T) {
	r := random.FromSeed(3)
	g := gen.InRangeUnsigned[uint](0, 100)
	for i := 0; i < 200; i++ {
		left, right := r.Split()
		r = left
		v := g.Generate(&right, 50).Value()
		assert.Less(t, v, uint(100))
	}
}

func TestInRangeRejectsEmptyRange(t *testing.T) {
	r := random.FromSeed(4)
	g := gen.InRangeSigned(5, 5)
	assert.Panics(t, func() {
		g.Generate(&r, 10)
	})
}

func TestPositiveOnlyYieldsPositive(t *testing.T) {
	r := random.FromSeed(5)
	g := gen.Positive(gen.InRangeSigned(-50, 50))
	for i := 0; i < 100; i++ {
		left, right := r.Split()
		r = left
		v := g.Generate(&right, 80).Value()
		assert.Greater(t, v, 0)
	}
}

func TestNegativeOnlyYieldsNegative(t *testing.T) {
	r := random.FromSeed(6)
	g := gen.Negative(gen.InRangeSigned(-50, 50))
	for i := 0; i < 100; i++ {
		left, right := r.Split()
		r = left
		v := g.Generate(&right, 80).Value()
		assert.Less(t, v, 0)
	}
}

func TestNonZeroExcludesZero(t *testing.T) {
	r := random.FromSeed(7)
	g := gen.NonZero(gen.InRangeSigned(-3, 3))
	for i := 0; i < 50; i++ {
		left, right := r.Split()
		r = left
		v := g.Generate(&right, 80).Value()
		assert.NotEqual(t, 0, v)
	}
}

func TestNonNegativeExcludesNegative(t *testing.T) {
	r := random.FromSeed(8)
	g := gen.NonNegative(gen.InRangeSigned(-50, 50))
	for i := 0; i < 100; i++ {
		left, right := r.Split()
		r = left
		v := g.Generate(&right, 80).Value()
		assert.GreaterOrEqual(t, v, 0)
	}
}

func TestSignedCenteredZeroSizeIsZero(t *testing.T) {
	r := random.FromSeed(10)
	g := gen.SignedCentered(100)
	s := g.Generate(&r, 0)
	assert.Equal(t, 0, s.Value())
}

func TestSignedCenteredStaysInBounds(t *testing.T) {
	r := random.FromSeed(11)
	g := gen.SignedCentered(50)
	for i := 0; i < 200; i++ {
		left, right := r.Split()
		r = left
		v := g.Generate(&right, 80).Value()
		assert.GreaterOrEqual(t, v, -50)
		assert.LessOrEqual(t, v, 50)
	}
}

func TestSignedCenteredMagnitudeScalesWithSize(t *testing.T) {
	const bound = 1 << 20
	g := gen.SignedCentered(bound)

	maxAbs := func(size int) int {
		r := random.FromSeed(12)
		max := 0
		for i := 0; i < 100; i++ {
			left, right := r.Split()
			r = left
			v := g.Generate(&right, size).Value()
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
		return max
	}

	small := maxAbs(1)
	large := maxAbs(gen.NominalCeiling)
	assert.Less(t, small, bound/10, "small size should draw far below the full bound")
	assert.Greater(t, large, bound/2, "size at the nominal ceiling should reach close to the full bound")
}

func TestSignedCenteredShrinksToZero(t *testing.T) {
	r := random.FromSeed(13)
	g := gen.SignedCentered(100)
	var s = g.Generate(&r, 80)
	for s.Value() == 0 {
		left, right := r.Split()
		r = left
		s = g.Generate(&right, 80)
	}
	final, path := shrinkable.FindLocalMin(s, func(int) bool { return true })
	assert.Equal(t, 0, final)
	assert.NotEmpty(t, path)
}

func TestInRangeSignedShrinksTowardTarget(t *testing.T) {
	r := random.FromSeed(9)
	g := gen.InRangeSigned(-100, 100)
	var found bool
	for i := 0; i < 200 && !found; i++ {
		left, right := r.Split()
		r = left
		s := g.Generate(&right, 100)
		if s.Value() > 1 {
			found = true
			children := s.Shrinks()
			v, ok := children.Next()
			assert.True(t, ok)
			assert.Less(t, v.Value(), s.Value())
		}
	}
	assert.True(t, found, "expected at least one generated value > 1 across attempts")
}
