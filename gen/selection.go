package gen

import (
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/seq"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// Weighted pairs a relative selection weight with a value or generator, for
// WeightedElement and WeightedOneOf.
type Weighted[T any] struct {
	Weight int
	Value  T
}

// Element picks uniformly among a fixed, non-empty list of values, shrinking
// toward options[0] by trying lower indices in turn.
func Element[T any](options ...T) Generator[T] {
	return ElementOf(options)
}

// ElementOf is Element taking a slice instead of variadic args.
func ElementOf[T any](options []T) Generator[T] {
	if len(options) == 0 {
		panic("gen.ElementOf: options must be non-empty")
	}
	return From(func(r *random.Random, _ int) shrinkable.Shrinkable[T] {
		idx := int(random.UniformUint64(r, uint64(len(options))))
		return elementShrinkable(options, idx)
	})
}

func elementShrinkable[T any](options []T, idx int) shrinkable.Shrinkable[T] {
	return shrinkable.Shrink(
		func() T { return options[idx] },
		func() seq.Seq[shrinkable.Shrinkable[T]] {
			lower := make([]int, 0, idx)
			for i := 0; i < idx; i++ {
				lower = append(lower, i)
			}
			return seq.Map(seq.FromSlice(lower), func(i int) shrinkable.Shrinkable[T] {
				return elementShrinkable(options, i)
			})
		},
	)
}

// WeightedElement picks among a fixed, non-empty list of weighted values,
// with probability proportional to each entry's Weight. A zero-weight entry
// is never picked; the weights must sum to a positive total. Shrinks toward
// the first lower-indexed entry, same as Element.
func WeightedElement[T any](options []Weighted[T]) Generator[T] {
	if len(options) == 0 {
		panic("gen.WeightedElement: options must be non-empty")
	}
	return From(func(r *random.Random, _ int) shrinkable.Shrinkable[T] {
		idx := pickWeightedIndex(r, options)
		values := make([]T, len(options))
		for i, o := range options {
			values[i] = o.Value
		}
		return elementShrinkable(values, idx)
	})
}

func pickWeightedIndex[T any](r *random.Random, options []Weighted[T]) int {
	total := 0
	for _, o := range options {
		total += o.Weight
	}
	if total <= 0 {
		panic("gen.WeightedElement: total weight must be positive")
	}
	pick := int(random.UniformUint64(r, uint64(total)))
	acc := 0
	for i, o := range options {
		acc += o.Weight
		if pick < acc {
			return i
		}
	}
	return len(options) - 1
}

// OneOf picks uniformly among a fixed, non-empty list of generators and
// defers to the chosen generator's own shrink tree only — no cross-branch
// shrinking (§4.5: "shrinks use the chosen generator's shrinks only"). A
// caller wanting the "first shrink is the first generator" bias uses
// SizedOneOf instead, where that behavior is spec'd explicitly.
func OneOf[T any](gens ...Generator[T]) Generator[T] {
	if len(gens) == 0 {
		panic("gen.OneOf: gens must be non-empty")
	}
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[T] {
		idx := int(random.UniformUint64(r, uint64(len(gens))))
		left, right := r.Split()
		*r = left
		return gens[idx].Generate(&right, size)
	})
}

// WeightedOneOf is OneOf with per-generator selection weights.
func WeightedOneOf[T any](options []Weighted[Generator[T]]) Generator[T] {
	if len(options) == 0 {
		panic("gen.WeightedOneOf: options must be non-empty")
	}
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[T] {
		idx := pickWeightedIndex(r, options)
		left, right := r.Split()
		*r = left
		return options[idx].Value.Generate(&right, size)
	})
}

// SizedElement builds the candidate list from the current size before
// picking, for option sets that should grow as size grows.
func SizedElement[T any](optionsFor func(size int) []T) Generator[T] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[T] {
		return ElementOf(optionsFor(size)).Generate(r, size)
	})
}

// SizedOneOf is OneOf with a size-dependent generator list, where — unlike
// plain OneOf — the first shrink offered is always gensFor(size)[0]'s value
// before the chosen subtree's own shrinks take over (§4.5 sized variants:
// "first shrink is always the first generator/element; then the chosen
// subtree shrinks in place").
func SizedOneOf[T any](gensFor func(size int) []Generator[T]) Generator[T] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[T] {
		gens := gensFor(size)
		if len(gens) == 0 {
			panic("gen.SizedOneOf: gensFor must return a non-empty list")
		}
		idx := int(random.UniformUint64(r, uint64(len(gens))))
		left, right := r.Split()
		*r = left
		chosen := gens[idx].Generate(&right, size)
		if idx == 0 {
			return chosen
		}
		fallbackLeft, fallbackRight := r.Split()
		*r = fallbackLeft
		fallback := gens[0].Generate(&fallbackRight, size)
		return shrinkable.MapShrinks(chosen, func(s seq.Seq[shrinkable.Shrinkable[T]]) seq.Seq[shrinkable.Shrinkable[T]] {
			return seq.Concat(seq.Just(fallback), s)
		})
	})
}
