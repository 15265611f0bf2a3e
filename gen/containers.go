package gen

import (
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/seq"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// maxUniqueAttempts bounds retries per position in Unique/UniqueBy before
// the generator gives up and raises a GenerationFailure.
const maxUniqueAttempts = 100

// Container builds a []T generator whose length scales with size (up to
// NominalCeiling elements) and whose shrink tree tries, in order: removing
// a contiguous chunk of elements (every chunk size from the full length
// down to 1, always offering the empty slice first), then substituting a
// single element by one of its own shrinks. Grounded on the teacher's
// gen/slice.go growNeighbors loop and rapidcheck's shrink::newElements /
// shrink::eachElement (Shrink.hpp), generalized to operate on the nested
// Shrinkable tree of each element rather than a flat shrink-and-rebase
// callback.
func Container[T any](elem Generator[T]) Generator[[]T] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[[]T] {
		n := containerLength(r, size)
		elems := make([]shrinkable.Shrinkable[T], n)
		for i := range elems {
			left, right := r.Split()
			*r = left
			elems[i] = elem.Generate(&right, size)
		}
		return containerShrinkable(elems)
	})
}

// FixedContainer builds a []T generator of exactly n elements. Only
// element-substitution shrinks are offered; the length never shrinks.
func FixedContainer[T any](elem Generator[T], n int) Generator[[]T] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[[]T] {
		elems := make([]shrinkable.Shrinkable[T], n)
		for i := range elems {
			left, right := r.Split()
			*r = left
			elems[i] = elem.Generate(&right, size)
		}
		return fixedContainerShrinkable(elems)
	})
}

// Unique is Container, but retries each position (growing no state between
// attempts) until every generated element is pairwise distinct from the
// others already chosen, failing after maxUniqueAttempts consecutive
// collisions at a single position.
func Unique[T comparable](elem Generator[T]) Generator[[]T] {
	return UniqueBy(elem, func(v T) T { return v })
}

// UniqueBy is Unique keyed by an extracted, comparable projection of T.
func UniqueBy[T any, K comparable](elem Generator[T], key func(T) K) Generator[[]T] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[[]T] {
		n := containerLength(r, size)
		elems := make([]shrinkable.Shrinkable[T], 0, n)
		seen := make(map[K]bool, n)
		for len(elems) < n {
			attempts := 0
			for {
				left, right := r.Split()
				*r = left
				cand := elem.Generate(&right, size)
				k := key(cand.Value())
				if !seen[k] {
					seen[k] = true
					elems = append(elems, cand)
					break
				}
				attempts++
				if attempts >= maxUniqueAttempts {
					Fail("UniqueBy: exhausted attempts finding a distinct element")
				}
			}
		}
		return uniqueContainerShrinkable(elems, key)
	})
}

func containerLength(r *random.Random, size int) int {
	ceiling := ClampSize(size)
	if ceiling > NominalCeiling {
		ceiling = NominalCeiling
	}
	return int(random.UniformUint64(r, uint64(ceiling)+1))
}

func containerShrinkable[T any](elems []shrinkable.Shrinkable[T]) shrinkable.Shrinkable[[]T] {
	return shrinkable.Shrink(
		func() []T { return elemsToValues(elems) },
		func() seq.Seq[shrinkable.Shrinkable[[]T]] {
			return seq.Concat(
				seq.Map(removalCandidates(elems), containerShrinkable[T]),
				seq.Map(substitutionCandidates(elems), containerShrinkable[T]),
			)
		},
	)
}

func fixedContainerShrinkable[T any](elems []shrinkable.Shrinkable[T]) shrinkable.Shrinkable[[]T] {
	return shrinkable.Shrink(
		func() []T { return elemsToValues(elems) },
		func() seq.Seq[shrinkable.Shrinkable[[]T]] {
			return seq.Map(substitutionCandidates(elems), fixedContainerShrinkable[T])
		},
	)
}

func uniqueContainerShrinkable[T any, K comparable](elems []shrinkable.Shrinkable[T], key func(T) K) shrinkable.Shrinkable[[]T] {
	return shrinkable.Shrink(
		func() []T { return elemsToValues(elems) },
		func() seq.Seq[shrinkable.Shrinkable[[]T]] {
			subs := seq.Filter(substitutionCandidates(elems), func(c []shrinkable.Shrinkable[T]) bool {
				return keysAreUnique(c, key)
			})
			build := func(c []shrinkable.Shrinkable[T]) shrinkable.Shrinkable[[]T] {
				return uniqueContainerShrinkable(c, key)
			}
			return seq.Concat(seq.Map(removalCandidates(elems), build), seq.Map(subs, build))
		},
	)
}

func keysAreUnique[T any, K comparable](elems []shrinkable.Shrinkable[T], key func(T) K) bool {
	seen := make(map[K]bool, len(elems))
	for _, e := range elems {
		k := key(e.Value())
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}

func elemsToValues[T any](elems []shrinkable.Shrinkable[T]) []T {
	out := make([]T, len(elems))
	for i, e := range elems {
		out[i] = e.Value()
	}
	return out
}

func removalCandidates[T any](elems []shrinkable.Shrinkable[T]) seq.Seq[[]shrinkable.Shrinkable[T]] {
	out := make([][]shrinkable.Shrinkable[T], 0, len(elems))
	for chunk := len(elems); chunk >= 1; chunk-- {
		for i := 0; i+chunk <= len(elems); i += chunk {
			cand := make([]shrinkable.Shrinkable[T], 0, len(elems)-chunk)
			cand = append(cand, elems[:i]...)
			cand = append(cand, elems[i+chunk:]...)
			out = append(out, cand)
		}
	}
	return seq.FromSlice(out)
}

func substitutionCandidates[T any](elems []shrinkable.Shrinkable[T]) seq.Seq[[]shrinkable.Shrinkable[T]] {
	out := make([][]shrinkable.Shrinkable[T], 0, len(elems))
	for i, e := range elems {
		children := e.Shrinks()
		for {
			c, ok := children.Next()
			if !ok {
				break
			}
			cand := append([]shrinkable.Shrinkable[T](nil), elems...)
			cand[i] = c
			out = append(out, cand)
		}
	}
	return seq.FromSlice(out)
}
