// Package gen provides the Generator[T] algebra: pure functions from
// (random.Random, size) to a shrinkable.Shrinkable[T], plus the combinators
// used to build them up (map, filter, bind, tupling, containers). Grounded
// on the teacher's gen package, whose Generator[T] interface
// (Generate(r *rand.Rand, sz Size) (T, Shrinker[T])) is generalized here to
// return a full shrink tree instead of a single accept/reject callback, per
// this system's spec (§3, §5): the teacher's per-type growNeighbors/pop/
// rebase loops become instances of shrinkable.ShrinkRecur driven by the
// shrink package's pure strategies.
package gen

import (
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// Generator is a pure function from (random, size) to a Shrinkable[T].
// Implementations must produce a valid value at size 0 and should scale the
// complexity of produced values with size, up to a nominal ceiling.
type Generator[T any] interface {
	Generate(r *random.Random, size int) shrinkable.Shrinkable[T]
	// Name returns a display name for counter-example labelling, or "" if
	// none was set.
	Name() string
}

// GenerationFailure is the single distinguished signal a generator may
// raise, from Generate or from its Shrinkable's Value(), to mean "could not
// produce a value" — not a test failure, but something the driver converts
// into a discard.
type GenerationFailure struct {
	Reason string
}

func (e GenerationFailure) Error() string { return "generation failure: " + e.Reason }

// Fail panics with a GenerationFailure; callers that evaluate a
// Shrinkable's Value() lazily are expected to recover it (see
// prop.ToProperty* and check.Run).
func Fail(reason string) {
	panic(GenerationFailure{Reason: reason})
}

type genFunc[T any] struct {
	fn   func(r *random.Random, size int) shrinkable.Shrinkable[T]
	name string
}

func (g genFunc[T]) Generate(r *random.Random, size int) shrinkable.Shrinkable[T] {
	return g.fn(r, size)
}

func (g genFunc[T]) Name() string { return g.name }

// From builds a Generator from a plain function.
func From[T any](fn func(r *random.Random, size int) shrinkable.Shrinkable[T]) Generator[T] {
	return genFunc[T]{fn: fn}
}

// Named attaches a display name to g. Map carries the name over to its
// result; the other combinators return unnamed generators.
func Named[T any](g Generator[T], name string) Generator[T] {
	return genFunc[T]{fn: g.Generate, name: name}
}

// Lazy defers construction of the wrapped generator until first use; the
// body runs once per Generate call, not once at Lazy's call site.
func Lazy[T any](build func() Generator[T]) Generator[T] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[T] {
		return build().Generate(r, size)
	})
}

// Just ignores its inputs and always returns v, with no shrinks.
func Just[T any](v T) Generator[T] {
	return From(func(*random.Random, int) shrinkable.Shrinkable[T] {
		return shrinkable.Just(v)
	})
}

// ClampSize keeps a size hint non-negative; generators use this on the size
// parameter before scaling it into a concrete magnitude or length.
func ClampSize(size int) int {
	if size < 0 {
		return 0
	}
	return size
}

// NominalCeiling is the size value beyond which generators are not required
// to keep growing the magnitude/length of produced values (§3: "up to a
// nominal ceiling, e.g., 100").
const NominalCeiling = 100
