package arbitrary

import (
	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/seq"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// Maybe is an Option-like sum type: Present is false for the empty case,
// in which Value holds T's zero value.
type Maybe[T any] struct {
	Present bool
	Value   T
}

// Some wraps v as a present Maybe.
func Some[T any](v T) Maybe[T] { return Maybe[T]{Present: true, Value: v} }

// None is the empty Maybe for T.
func None[T any]() Maybe[T] { return Maybe[T]{} }

// MaybeOf builds a Maybe[T] generator from an element generator: at size 0
// it is always empty; from size 1 it is present with probability
// (50 + size/2)%, about half at size 1 and rising linearly to always present
// at the nominal ceiling. Its shrink tree always offers None first, then the present
// value's own shrinks wrapped as Some.
func MaybeOf[T any](elem gen.Generator[T]) gen.Generator[Maybe[T]] {
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[Maybe[T]] {
		s := gen.ClampSize(size)
		if s == 0 {
			return shrinkable.Just(None[T]())
		}
		presentChance := s
		if presentChance > gen.NominalCeiling {
			presentChance = gen.NominalCeiling
		}
		threshold := gen.NominalCeiling / 2
		present := int(random.UniformUint64(r, gen.NominalCeiling)) < (threshold + presentChance/2)
		if !present {
			return shrinkable.Just(None[T]())
		}
		inner := elem.Generate(r, size)
		return maybeShrinkable(inner)
	})
}

// MaybeDefault is MaybeOf using T's registered default generator.
func MaybeDefault[T any]() gen.Generator[Maybe[T]] {
	return MaybeOf(For[T]())
}

func maybeShrinkable[T any](inner shrinkable.Shrinkable[T]) shrinkable.Shrinkable[Maybe[T]] {
	wrapped := shrinkable.Map(inner, Some[T])
	return shrinkable.MapShrinks(wrapped, func(children seq.Seq[shrinkable.Shrinkable[Maybe[T]]]) seq.Seq[shrinkable.Shrinkable[Maybe[T]]] {
		return seq.Concat(seq.Just(shrinkable.Just(None[T]())), children)
	})
}
