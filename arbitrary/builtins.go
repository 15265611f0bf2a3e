package arbitrary

import (
	"time"

	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/shrink"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// defaultIntBound bounds the default integer generators' magnitude so the
// "everyday" case doesn't immediately reach for adversarial bit patterns at
// the platform's full integer width, matching the teacher's gen/int.go and
// gen/int64.go practice; callers who want the full representable range use
// gen.InRangeSigned/InRangeUnsigned directly.
const defaultIntBound = 1 << 30

func init() {
	Register[int](gen.SignedCentered[int](defaultIntBound))
	Register[int8](gen.SignedCentered[int8](1<<7 - 1))
	Register[int16](gen.SignedCentered[int16](1<<15 - 1))
	Register[int32](gen.SignedCentered[int32](defaultIntBound))
	Register[int64](gen.SignedCentered[int64](defaultIntBound))

	Register[uint](gen.InRangeUnsigned[uint](0, 2*defaultIntBound))
	Register[uint8](gen.InRangeUnsigned[uint8](0, 1<<8-1))
	Register[uint16](gen.InRangeUnsigned[uint16](0, 1<<16-1))
	Register[uint32](gen.InRangeUnsigned[uint32](0, 2*defaultIntBound))
	Register[uint64](gen.InRangeUnsigned[uint64](0, 2*defaultIntBound))

	Register[float64](float64Default())
	Register[float32](gen.Map(For[float64](), func(v float64) float32 { return float32(v) }))

	Register[bool](boolDefault())
	Register[rune](runeDefault())
	Register[string](StringOf(For[rune]()))

	Register[time.Duration](gen.Map(For[int64](), func(v int64) time.Duration { return time.Duration(v) }))
	Register[time.Time](gen.Map(For[int64](), func(v int64) time.Time { return time.Unix(0, v).UTC() }))
}

// float64Default generates float64 values scaled by size and shrinking
// toward 0.0 via shrink.Real, grounded on the teacher's gen/float64.go.
func float64Default() gen.Generator[float64] {
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[float64] {
		scale := float64(gen.ClampSize(size))
		if scale > gen.NominalCeiling {
			scale = gen.NominalCeiling
		}
		magnitude := (random.UniformFloat64(r)*2 - 1) * scale
		return shrinkable.ShrinkRecur(magnitude, shrink.Real)
	})
}

// boolDefault generates a bool, uniformly at size > 0 and always false at
// size 0, shrinking true toward false via shrink.Bool.
func boolDefault() gen.Generator[bool] {
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[bool] {
		if gen.ClampSize(size) == 0 {
			return shrinkable.Just(false)
		}
		v := random.UniformUint64(r, 2) == 1
		return shrinkable.ShrinkRecur(v, shrink.Bool)
	})
}

// runeDefault generates a printable ASCII rune, shrinking toward 'a' via
// shrink.Rune, grounded on the teacher's gen/string.go alphabet choice.
func runeDefault() gen.Generator[rune] {
	const lo, hi = 0x20, 0x7e
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[rune] {
		v := rune(lo) + rune(random.UniformUint64(r, uint64(hi-lo+1)))
		return shrinkable.ShrinkRecur(v, shrink.Rune)
	})
}

// StringOf builds a string generator from a rune generator, via the
// Container container strategy over []rune then a string conversion.
func StringOf(elem gen.Generator[rune]) gen.Generator[string] {
	return gen.Map(gen.Container(elem), func(rs []rune) string { return string(rs) })
}
