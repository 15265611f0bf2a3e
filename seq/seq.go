// Package seq implements a lazy, single-pass, cloneable sequence: the
// building block shrinkable trees use for their child lists, and containers
// use for candidate shrinks. Grounded on include/rapidcheck/Seq.h's
// operation set (original_source), reimplemented as a Go closure pair
// instead of a type-erased C++ interface, per the design note that a
// "type-erased callable becomes an enum-plus-closure pattern" in Go.
package seq

// Seq is a lazy, finite-or-infinite sequence of T. Its single primitive
// observer is Next; Clone produces an independent cursor over the same
// remaining elements, so consuming a clone never affects the original (and
// vice versa).
type Seq[T any] struct {
	next  func() (T, bool)
	clone func() Seq[T]
}

// Next returns the next element and true, or the zero value and false if
// the sequence is exhausted. A panic raised while producing an element is
// recovered: that call returns the zero value and false. The Seq keeps no
// record of the panic, so a later call asks the underlying producer again
// and may yield further elements.
func (s Seq[T]) Next() (v T, ok bool) {
	if s.next == nil {
		return v, false
	}
	defer func() {
		if recover() != nil {
			var zero T
			v, ok = zero, false
		}
	}()
	return s.next()
}

// Clone returns an independent Seq that will yield the same remaining
// elements as s, from this point forward, regardless of further consumption
// of either copy.
func (s Seq[T]) Clone() Seq[T] {
	if s.clone == nil {
		return Empty[T]()
	}
	return s.clone()
}

// Empty returns a Seq with no elements.
func Empty[T any]() Seq[T] {
	return Seq[T]{
		next:  func() (T, bool) { var z T; return z, false },
		clone: func() Seq[T] { return Empty[T]() },
	}
}

// Just returns a Seq yielding exactly the given values, in order.
func Just[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// FromSlice returns a Seq over a defensive copy of xs.
func FromSlice[T any](xs []T) Seq[T] {
	cp := append([]T(nil), xs...)
	return sliceSeq(cp, 0)
}

func sliceSeq[T any](xs []T, i int) Seq[T] {
	return Seq[T]{
		next: func() (T, bool) {
			if i >= len(xs) {
				var z T
				return z, false
			}
			v := xs[i]
			i++
			return v, true
		},
		clone: func() Seq[T] { return sliceSeq(xs, i) },
	}
}

// Iterate returns the infinite sequence init, f(init), f(f(init)), ...
func Iterate[T any](init T, f func(T) T) Seq[T] {
	c := init
	return Seq[T]{
		next: func() (T, bool) {
			v := c
			c = f(c)
			return v, true
		},
		clone: func() Seq[T] { return Iterate(c, f) },
	}
}

// RangeSeq returns the sequence of ints lo, lo+1, ..., hi-1.
func RangeSeq(lo, hi int) Seq[int] {
	if hi < lo {
		hi = lo
	}
	xs := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		xs = append(xs, i)
	}
	return FromSlice(xs)
}

// Repeat returns the infinite sequence of x, x, x, ...
func Repeat[T any](x T) Seq[T] {
	return Iterate(x, func(v T) T { return v })
}

// Map returns a Seq applying f to every element of s lazily.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	return Seq[U]{
		next: func() (U, bool) {
			v, ok := s.Next()
			if !ok {
				var z U
				return z, false
			}
			return f(v), true
		},
		clone: func() Seq[U] { return Map(s.Clone(), f) },
	}
}

// Filter returns a Seq yielding only elements of s satisfying p.
func Filter[T any](s Seq[T], p func(T) bool) Seq[T] {
	return Seq[T]{
		next: func() (T, bool) {
			for {
				v, ok := s.Next()
				if !ok {
					var z T
					return z, false
				}
				if p(v) {
					return v, true
				}
			}
		},
		clone: func() Seq[T] { return Filter(s.Clone(), p) },
	}
}

// MapMaybe returns a Seq of f(v) for every v in s where f returns ok=true,
// skipping elements where it returns false.
func MapMaybe[T, U any](s Seq[T], f func(T) (U, bool)) Seq[U] {
	return Seq[U]{
		next: func() (U, bool) {
			for {
				v, ok := s.Next()
				if !ok {
					var z U
					return z, false
				}
				if u, keep := f(v); keep {
					return u, true
				}
			}
		},
		clone: func() Seq[U] { return MapMaybe(s.Clone(), f) },
	}
}

// Concat returns the sequence of all elements of a followed by all
// elements of b.
func Concat[T any](a, b Seq[T]) Seq[T] {
	first := true
	return Seq[T]{
		next: func() (T, bool) {
			if first {
				if v, ok := a.Next(); ok {
					return v, true
				}
				first = false
			}
			return b.Next()
		},
		clone: func() Seq[T] {
			if first {
				return Concat(a.Clone(), b.Clone())
			}
			return b.Clone()
		},
	}
}

// MapCat (flat-map) applies f to every element of s and concatenates the
// resulting sequences in order.
func MapCat[T, U any](s Seq[T], f func(T) Seq[U]) Seq[U] {
	var cur Seq[U]
	haveCur := false
	return Seq[U]{
		next: func() (U, bool) {
			for {
				if haveCur {
					if v, ok := cur.Next(); ok {
						return v, true
					}
					haveCur = false
				}
				v, ok := s.Next()
				if !ok {
					var z U
					return z, false
				}
				cur = f(v)
				haveCur = true
			}
		},
		clone: func() Seq[U] {
			clonedOuter := s.Clone()
			result := MapCat(clonedOuter, f)
			if haveCur {
				result = Concat(cur.Clone(), result)
			}
			return result
		},
	}
}

// Join flattens a Seq of Seqs.
func Join[T any](ss Seq[Seq[T]]) Seq[T] {
	return MapCat(ss, func(s Seq[T]) Seq[T] { return s })
}

// ZipWith combines elements of a and b pairwise via f, stopping when either
// is exhausted.
func ZipWith[A, B, C any](a Seq[A], b Seq[B], f func(A, B) C) Seq[C] {
	return Seq[C]{
		next: func() (C, bool) {
			av, aok := a.Next()
			if !aok {
				var z C
				return z, false
			}
			bv, bok := b.Next()
			if !bok {
				var z C
				return z, false
			}
			return f(av, bv), true
		},
		clone: func() Seq[C] { return ZipWith(a.Clone(), b.Clone(), f) },
	}
}

// Take returns at most the first n elements of s.
func Take[T any](s Seq[T], n int) Seq[T] {
	remaining := n
	return Seq[T]{
		next: func() (T, bool) {
			if remaining <= 0 {
				var z T
				return z, false
			}
			v, ok := s.Next()
			if !ok {
				remaining = 0
				var z T
				return z, false
			}
			remaining--
			return v, true
		},
		clone: func() Seq[T] { return Take(s.Clone(), remaining) },
	}
}

// Drop skips the first n elements of s.
func Drop[T any](s Seq[T], n int) Seq[T] {
	dropped := false
	do := func() {
		for i := 0; i < n; i++ {
			if _, ok := s.Next(); !ok {
				break
			}
		}
		dropped = true
	}
	return Seq[T]{
		next: func() (T, bool) {
			if !dropped {
				do()
			}
			return s.Next()
		},
		clone: func() Seq[T] {
			if !dropped {
				do()
			}
			return s.Clone()
		},
	}
}

// TakeWhile returns the longest prefix of s whose elements satisfy p.
func TakeWhile[T any](s Seq[T], p func(T) bool) Seq[T] {
	done := false
	return Seq[T]{
		next: func() (T, bool) {
			if done {
				var z T
				return z, false
			}
			v, ok := s.Next()
			if !ok || !p(v) {
				done = true
				var z T
				return z, false
			}
			return v, true
		},
		clone: func() Seq[T] {
			if done {
				return Empty[T]()
			}
			return TakeWhile(s.Clone(), p)
		},
	}
}

// DropWhile skips the longest prefix of s whose elements satisfy p.
func DropWhile[T any](s Seq[T], p func(T) bool) Seq[T] {
	skipped := false
	var pending T
	havePending := false
	do := func() {
		for {
			v, ok := s.Next()
			if !ok {
				break
			}
			if !p(v) {
				pending, havePending = v, true
				break
			}
		}
		skipped = true
	}
	return Seq[T]{
		next: func() (T, bool) {
			if !skipped {
				do()
			}
			if havePending {
				v := pending
				havePending = false
				return v, true
			}
			return s.Next()
		},
		clone: func() Seq[T] {
			if !skipped {
				do()
			}
			if havePending {
				return Concat(Just(pending), s.Clone())
			}
			return s.Clone()
		},
	}
}

// Cycle returns s repeated forever; empty s yields an empty (not infinite)
// sequence.
func Cycle[T any](s Seq[T]) Seq[T] {
	cur := s.Clone()
	empty := true
	return Seq[T]{
		next: func() (T, bool) {
			v, ok := cur.Next()
			if ok {
				empty = false
				return v, true
			}
			if empty {
				var z T
				return z, false
			}
			cur = s.Clone()
			return cur.Next()
		},
		clone: func() Seq[T] { return Concat(cur.Clone(), Cycle(s)) },
	}
}

// Cast converts a Seq[T] to a Seq[U] via a fallible conversion, dropping
// elements the conversion rejects.
func Cast[T, U any](s Seq[T], convert func(T) (U, bool)) Seq[U] {
	return MapMaybe(s, convert)
}

// ToSlice materializes s. Only safe for finite sequences.
func ToSlice[T any](s Seq[T]) []T {
	out := []T{}
	c := s.Clone()
	for {
		v, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
