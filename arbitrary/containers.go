package arbitrary

import (
	"github.com/lucaskalb/gorapid/gen"
)

// SliceOf builds a []T generator from an element generator via
// gen.Container, reusing whatever shrink behavior elem provides per
// element.
func SliceOf[T any](elem gen.Generator[T]) gen.Generator[[]T] {
	return gen.Container(elem)
}

// Slice is SliceOf using T's registered default generator.
func Slice[T any]() gen.Generator[[]T] {
	return SliceOf(For[T]())
}

// MapOf builds a map[K]V generator from separate key and value generators:
// entries are generated as a Container of (unique-keyed) pairs and folded
// into a map. Its shrink tree inherits the pair container's remove/
// substitute strategy.
func MapOf[K comparable, V any](keyGen gen.Generator[K], valueGen gen.Generator[V]) gen.Generator[map[K]V] {
	entries := gen.Tuple2Of(keyGen, valueGen)
	unique := gen.UniqueBy(entries, func(t gen.Tuple2[K, V]) K { return t.First })
	return gen.Map(unique, func(pairs []gen.Tuple2[K, V]) map[K]V {
		out := make(map[K]V, len(pairs))
		for _, p := range pairs {
			out[p.First] = p.Second
		}
		return out
	})
}

// Map is MapOf using K's and V's registered default generators.
func Map[K comparable, V any]() gen.Generator[map[K]V] {
	return MapOf[K, V](For[K](), For[V]())
}
