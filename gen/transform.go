package gen

import (
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// maxFilterAttempts bounds how many times Filter/SuchThat retries at
// growing size before giving up with a GenerationFailure (§4.5: "retry
// with increasing size, bounded").
const maxFilterAttempts = 100

// Map transforms every value (root and every shrink) produced by g through
// f, preserving the shape of the shrink tree and g's display name.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return Named(From(func(r *random.Random, size int) shrinkable.Shrinkable[U] {
		return shrinkable.Map(g.Generate(r, size), f)
	}), g.Name())
}

// MapCat (bind) generates a T, then generates a U from f(value), with the
// resulting shrink tree trying the bound generator's own shrinks first and
// falling back to shrinking the seed and rebinding, per §4.5 and
// shrinkable.MapCat.
func MapCat[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[U] {
		left, right := r.Split()
		*r = left
		seed := g.Generate(&right, size)
		return shrinkable.MapCat(seed, func(v T) shrinkable.Shrinkable[U] {
			bindLeft, bindRight := r.Split()
			*r = bindLeft
			return f(v).Generate(&bindRight, size)
		})
	})
}

// Bind is an alias for MapCat, matching the common PBT naming.
func Bind[T, U any](g Generator[T], f func(T) Generator[U]) Generator[U] {
	return MapCat(g, f)
}

// Filter (a.k.a. SuchThat) retries g — at increasing size, per §4.5 — until
// pred holds for the drawn value, and restricts the shrink tree to
// candidates that also satisfy pred. Fails after maxFilterAttempts
// consecutive rejections.
func Filter[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[T] {
		attemptSize := size
		for attempt := 0; attempt < maxFilterAttempts; attempt++ {
			left, right := r.Split()
			*r = left
			candidate := g.Generate(&right, attemptSize)
			if filtered, ok := shrinkable.Filter(candidate, pred); ok {
				return filtered
			}
			attemptSize++
		}
		Fail("Filter: exhausted attempts satisfying predicate")
		panic("unreachable")
	})
}

// SuchThat is an alias for Filter, matching the common PBT naming.
func SuchThat[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return Filter(g, pred)
}

// DistinctFrom is sugar for Filter(g, func(v T) bool { return v != other }).
func DistinctFrom[T comparable](g Generator[T], other T) Generator[T] {
	return Filter(g, func(v T) bool { return v != other })
}

// Resize replaces the size hint passed to g with a fixed value, ignoring
// whatever size the caller (driver or enclosing combinator) supplies.
func Resize[T any](g Generator[T], size int) Generator[T] {
	return From(func(r *random.Random, _ int) shrinkable.Shrinkable[T] {
		return g.Generate(r, size)
	})
}

// WithSize is an alias for Resize.
func WithSize[T any](g Generator[T], size int) Generator[T] {
	return Resize(g, size)
}

// Scale transforms the size hint passed to g through f before generating,
// e.g. Scale(g, func(n int) int { return n / 2 }) to generate "smaller"
// substructures (the pattern used when recursing into a tree or graph
// generator).
func Scale[T any](g Generator[T], f func(int) int) Generator[T] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[T] {
		return g.Generate(r, ClampSize(f(size)))
	})
}

// NoShrink disables shrinking for g: the root value is kept but its
// shrink tree is empty.
func NoShrink[T any](g Generator[T]) Generator[T] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[T] {
		return shrinkable.Just(g.Generate(r, size).Value())
	})
}
