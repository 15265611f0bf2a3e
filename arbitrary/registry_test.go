package arbitrary_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lucaskalb/gorapid/arbitrary"
	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/random"
)

func TestBuiltinIntegerWidthsAreRegistered(t *testing.T) {
	assert.True(t, arbitrary.Registered[int]())
	assert.True(t, arbitrary.Registered[int8]())
	assert.True(t, arbitrary.Registered[int16]())
	assert.True(t, arbitrary.Registered[int32]())
	assert.True(t, arbitrary.Registered[int64]())
	assert.True(t, arbitrary.Registered[uint]())
	assert.True(t, arbitrary.Registered[uint8]())
	assert.True(t, arbitrary.Registered[uint16]())
	assert.True(t, arbitrary.Registered[uint32]())
	assert.True(t, arbitrary.Registered[uint64]())
	assert.True(t, arbitrary.Registered[float32]())
	assert.True(t, arbitrary.Registered[float64]())
	assert.True(t, arbitrary.Registered[bool]())
	assert.True(t, arbitrary.Registered[rune]())
	assert.True(t, arbitrary.Registered[string]())
	assert.True(t, arbitrary.Registered[time.Duration]())
	assert.True(t, arbitrary.Registered[time.Time]())
}

func TestForPanicsOnUnregisteredType(t *testing.T) {
	type unregistered struct{ X int }
	assert.Panics(t, func() {
		arbitrary.For[unregistered]()
	})
}

func TestRegisterOverridesDefault(t *testing.T) {
	type custom struct{ X int }
	arbitrary.Register[custom](gen.Just(custom{X: 42}))
	r := random.FromSeed(1)
	s := arbitrary.For[custom]().Generate(&r, 10)
	assert.Equal(t, custom{X: 42}, s.Value())
}

func TestInt8StaysInWidth(t *testing.T) {
	r := random.FromSeed(2)
	g := arbitrary.For[int8]()
	for i := 0; i < 100; i++ {
		left, right := r.Split()
		r = left
		v := g.Generate(&right, 100).Value()
		assert.GreaterOrEqual(t, v, int8(-1<<7))
		assert.LessOrEqual(t, v, int8(1<<7-1))
	}
}

func TestStringGeneratesPrintableRunes(t *testing.T) {
	r := random.FromSeed(3)
	g := arbitrary.For[string]()
	s := g.Generate(&r, 40)
	for _, c := range s.Value() {
		assert.GreaterOrEqual(t, c, rune(0x20))
		assert.LessOrEqual(t, c, rune(0x7e))
	}
}

func TestTimeDurationRoundTrips(t *testing.T) {
	r := random.FromSeed(4)
	g := arbitrary.For[time.Duration]()
	s := g.Generate(&r, 40)
	assert.IsType(t, time.Duration(0), s.Value())
}
