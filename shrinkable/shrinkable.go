// Package shrinkable implements the rose-tree type every generator
// produces: a root value plus a lazy Seq of child Shrinkables representing
// candidate reductions. Grounded on rapidcheck/detail/Rose.hpp and
// rapidcheck/Shrink.hpp (original_source) for the tree shape and the
// "try a child, recurse into its children on success" descent algorithm,
// collapsed here from the source's intrusive RoseNode class hierarchy into
// a small closure-backed value type, per the design note that
// "shared-pointer-heavy Shrinkable implementations collapse" in a language
// with first-class closures.
package shrinkable

import "github.com/lucaskalb/gorapid/seq"

// Shrinkable is a lazy rose tree: Value is the root, Shrinks are its
// immediate children. Both observers are pure; Value may recompute on every
// call but must be deterministic.
type Shrinkable[T any] struct {
	value  func() T
	shrink func() seq.Seq[Shrinkable[T]]
}

// Value returns the root value of this node.
func (s Shrinkable[T]) Value() T { return s.value() }

// Shrinks returns the sequence of immediate child nodes.
func (s Shrinkable[T]) Shrinks() seq.Seq[Shrinkable[T]] {
	if s.shrink == nil {
		return seq.Empty[Shrinkable[T]]()
	}
	return s.shrink()
}

// Just returns a leaf Shrinkable with no shrinks.
func Just[T any](v T) Shrinkable[T] {
	return Shrinkable[T]{
		value:  func() T { return v },
		shrink: func() seq.Seq[Shrinkable[T]] { return seq.Empty[Shrinkable[T]]() },
	}
}

// JustWithShrinks returns a leaf value paired with an explicit child
// sequence (e.g. for values assembled by a combinator that already knows
// the shrink candidates).
func JustWithShrinks[T any](v T, shrinks seq.Seq[Shrinkable[T]]) Shrinkable[T] {
	return Shrinkable[T]{
		value:  func() T { return v },
		shrink: func() seq.Seq[Shrinkable[T]] { return shrinks.Clone() },
	}
}

// Shrink constructs a Shrinkable from a value thunk and a shrinks thunk,
// the fully general constructor.
func Shrink[T any](valueFn func() T, shrinksFn func() seq.Seq[Shrinkable[T]]) Shrinkable[T] {
	return Shrinkable[T]{value: valueFn, shrink: shrinksFn}
}

// ShrinkRecur builds a tree by lazily re-applying step to every value step
// produces: the root is seed, and every node's children are step(value)
// wrapped again via ShrinkRecur. This is the generalization of the
// teacher's per-type growNeighbors-and-rebase loops (gen/int.go et al.)
// into a single reusable unfold.
func ShrinkRecur[T any](seed T, step func(T) seq.Seq[T]) Shrinkable[T] {
	return Shrink(
		func() T { return seed },
		func() seq.Seq[Shrinkable[T]] {
			return seq.Map(step(seed), func(v T) Shrinkable[T] {
				return ShrinkRecur(v, step)
			})
		},
	)
}

// Map transforms the root and, lazily, every descendant via f.
func Map[T, U any](s Shrinkable[T], f func(T) U) Shrinkable[U] {
	return Shrinkable[U]{
		value: func() U { return f(s.Value()) },
		shrink: func() seq.Seq[Shrinkable[U]] {
			return seq.Map(s.Shrinks(), func(c Shrinkable[T]) Shrinkable[U] { return Map(c, f) })
		},
	}
}

// MapShrinks replaces the children sequence of s by applying g to it,
// leaving the root value untouched.
func MapShrinks[T any](s Shrinkable[T], g func(seq.Seq[Shrinkable[T]]) seq.Seq[Shrinkable[T]]) Shrinkable[T] {
	return Shrinkable[T]{
		value:  s.value,
		shrink: func() seq.Seq[Shrinkable[T]] { return g(s.Shrinks()) },
	}
}

// Filter returns a Shrinkable whose children are filtered by p, and whose
// own filter has been applied recursively; ok is false when the root
// itself fails p.
func Filter[T any](s Shrinkable[T], p func(T) bool) (result Shrinkable[T], ok bool) {
	if !p(s.Value()) {
		return Shrinkable[T]{}, false
	}
	return Shrinkable[T]{
		value: s.value,
		shrink: func() seq.Seq[Shrinkable[T]] {
			return seq.MapMaybe(s.Shrinks(), func(c Shrinkable[T]) (Shrinkable[T], bool) {
				return Filter(c, p)
			})
		},
	}, true
}

// MapCat is monadic bind: the result's root is the root of f(s.Value()),
// and its children are (a) f(s.Value())'s own shrinks, followed by (b) s's
// original children each re-bound through f. This encodes "shrink the
// bound subtree first, then shrink the seed and rebind."
func MapCat[T, U any](s Shrinkable[T], f func(T) Shrinkable[U]) Shrinkable[U] {
	bound := f(s.Value())
	return Shrinkable[U]{
		value: bound.value,
		shrink: func() seq.Seq[Shrinkable[U]] {
			fromBound := bound.Shrinks()
			fromSeed := seq.Map(s.Shrinks(), func(c Shrinkable[T]) Shrinkable[U] { return MapCat(c, f) })
			return seq.Concat(fromBound, fromSeed)
		},
	}
}

// Pair shrinks two Shrinkables lexicographically: first shrink a with b
// held at its current root, then (once a has no more shrinks at this
// level) shrink b with the latest a.
func Pair[A, B any](a Shrinkable[A], b Shrinkable[B]) Shrinkable[Pair2[A, B]] {
	return Shrinkable[Pair2[A, B]]{
		value: func() Pair2[A, B] { return Pair2[A, B]{First: a.Value(), Second: b.Value()} },
		shrink: func() seq.Seq[Shrinkable[Pair2[A, B]]] {
			shrinkA := seq.Map(a.Shrinks(), func(ca Shrinkable[A]) Shrinkable[Pair2[A, B]] {
				return Pair(ca, b)
			})
			shrinkB := seq.Map(b.Shrinks(), func(cb Shrinkable[B]) Shrinkable[Pair2[A, B]] {
				return Pair(a, cb)
			})
			return seq.Concat(shrinkA, shrinkB)
		},
	}
}

// Pair2 is the value carried by Pair's Shrinkable.
type Pair2[A, B any] struct {
	First  A
	Second B
}

// PostShrink appends additional shrink candidates produced by extraFn to
// every node's child sequence (applied recursively down the tree).
func PostShrink[T any](s Shrinkable[T], extraFn func(T) seq.Seq[Shrinkable[T]]) Shrinkable[T] {
	return Shrinkable[T]{
		value: s.value,
		shrink: func() seq.Seq[Shrinkable[T]] {
			own := seq.Map(s.Shrinks(), func(c Shrinkable[T]) Shrinkable[T] { return PostShrink(c, extraFn) })
			extra := seq.Map(extraFn(s.Value()), func(c Shrinkable[T]) Shrinkable[T] { return PostShrink(c, extraFn) })
			return seq.Concat(own, extra)
		},
	}
}

// FindLocalMin performs a greedy descent: starting from shrinkable, it
// walks children in order, accepting the first whose value satisfies pred
// and restarting the walk from that child's children. It terminates when no
// child of the current best satisfies pred. It returns the final value and
// the path of child indices taken. A panic while computing a node's
// children makes that node a leaf: the descent stops there and returns it,
// rather than aborting.
func FindLocalMin[T any](root Shrinkable[T], pred func(T) bool) (best T, path []int) {
	cur := root
	path = []int{}
	for {
		children := safeShrinks(cur)
		idx := 0
		advanced := false
		for {
			child, ok := children.Next()
			if !ok {
				break
			}
			if pred(child.Value()) {
				cur = child
				path = append(path, idx)
				advanced = true
				break
			}
			idx++
		}
		if !advanced {
			return cur.Value(), path
		}
	}
}

func safeShrinks[T any](s Shrinkable[T]) (out seq.Seq[Shrinkable[T]]) {
	defer func() {
		if recover() != nil {
			out = seq.Empty[Shrinkable[T]]()
		}
	}()
	return s.Shrinks()
}

// WalkPath follows the given child indices from root, returning the
// terminal Shrinkable, or ok=false if any index is out of range.
func WalkPath[T any](root Shrinkable[T], path []int) (node Shrinkable[T], ok bool) {
	node = root
	for _, idx := range path {
		children := node.Shrinks()
		found := false
		for i := 0; i <= idx; i++ {
			c, hasNext := children.Next()
			if !hasNext {
				return Shrinkable[T]{}, false
			}
			if i == idx {
				node = c
				found = true
			}
		}
		if !found {
			return Shrinkable[T]{}, false
		}
	}
	return node, true
}
