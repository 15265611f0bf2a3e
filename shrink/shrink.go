// Package shrink provides pure shrink-candidate functions for primitive and
// container types — the step functions shrinkable.ShrinkRecur and the
// container generators in package gen consume. Grounded directly on the
// teacher's per-type shrink heuristics (target-then-bisect-then-unit-step-
// then-bounds, duplicated across gen/int.go, gen/uint.go, gen/int64.go,
// gen/uint64.go, gen/float.go, gen/float64.go, gen/bool.go, gen/string.go,
// gen/slice.go, gen/array.go in the teacher), here collapsed into one
// generic implementation per family instead of nine copies, and on
// rapidcheck/Shrink.hpp (original_source)'s IntegerDividerShrinker /
// RemoveElementShrinker / ShrinkElementShrinker for the container strategy.
package shrink

import (
	"math"

	"github.com/lucaskalb/gorapid/seq"
)

// Signed produces the shrink sequence for a signed integer value within
// [lo, hi]: first 0 (if in range and value isn't already 0), then the
// sign-flipped value (pulling a negative value toward positive, then
// toward zero), then a halving sequence value/2, value/4, ..., 1, omitting
// zero and the original value. Matches §4.4.
func Signed[T int | int8 | int16 | int32 | int64](value, lo, hi T) seq.Seq[T] {
	out := make([]T, 0, 8)
	seen := map[T]bool{value: true}
	push := func(x T) {
		if x < lo || x > hi || seen[x] {
			return
		}
		seen[x] = true
		out = append(out, x)
	}

	target := signedTarget(lo, hi)
	if value != target {
		push(target)
	}
	if value < 0 {
		push(-value)
	}
	for v := value / 2; v != 0; v /= 2 {
		push(v)
	}
	return seq.FromSlice(out)
}

func signedTarget[T int | int8 | int16 | int32 | int64](lo, hi T) T {
	if lo <= 0 && 0 <= hi {
		return 0
	}
	if lo > 0 {
		return lo
	}
	return hi
}

// Unsigned produces the shrink sequence for an unsigned value in [lo, hi]:
// 0 first (if reachable), then a halving sequence toward zero.
func Unsigned[T uint | uint8 | uint16 | uint32 | uint64](value, lo, hi T) seq.Seq[T] {
	out := make([]T, 0, 8)
	seen := map[T]bool{value: true}
	push := func(x T) {
		if x < lo || x > hi || seen[x] {
			return
		}
		seen[x] = true
		out = append(out, x)
	}
	if value != lo {
		push(lo)
	}
	for v := value / 2; v != 0; v /= 2 {
		if v < lo {
			break
		}
		push(v)
	}
	return seq.FromSlice(out)
}

// Real produces the shrink sequence for a float64 value: first 0.0 (if not
// already 0), then trunc(value) if value is non-integral, then an integer
// halving sequence of the truncated value.
func Real(value float64) seq.Seq[float64] {
	out := make([]float64, 0, 8)
	seen := map[float64]bool{value: true}
	push := func(x float64) {
		if math.IsNaN(x) || seen[x] {
			return
		}
		seen[x] = true
		out = append(out, x)
	}

	if value != 0 {
		push(0)
	}
	t := math.Trunc(value)
	if t != value {
		push(t)
	}
	for v := int64(t) / 2; v != 0; v /= 2 {
		push(float64(v))
	}
	return seq.FromSlice(out)
}

// Bool produces the shrink sequence for a bool: true shrinks to false;
// false has no shrinks.
func Bool(value bool) seq.Seq[bool] {
	if value {
		return seq.Just(false)
	}
	return seq.Empty[bool]()
}

// Rune produces the shrink sequence for a rune, shrinking toward 'a'
// (lowercase letters toward 'a', with uppercase letters additionally
// offering their lowercase form).
func Rune(value rune) seq.Seq[rune] {
	out := make([]rune, 0, 2)
	seen := map[rune]bool{value: true}
	push := func(r rune) {
		if seen[r] {
			return
		}
		seen[r] = true
		out = append(out, r)
	}
	if value >= 'A' && value <= 'Z' {
		push(value - 'A' + 'a')
	}
	if value != 'a' {
		push('a')
	}
	return seq.FromSlice(out)
}

// RemoveChunks yields, for every chunk size from len(xs) down to 1, every
// contiguous removal of that size — the "remove chunks" container
// strategy. The first candidate produced overall is always the empty slice
// (chunk size == len(xs)).
func RemoveChunks[T any](xs []T) seq.Seq[[]T] {
	out := make([][]T, 0, len(xs))
	for chunk := len(xs); chunk >= 1; chunk-- {
		for i := 0; i+chunk <= len(xs); i++ {
			cand := make([]T, 0, len(xs)-chunk)
			cand = append(cand, xs[:i]...)
			cand = append(cand, xs[i+chunk:]...)
			out = append(out, cand)
		}
	}
	return seq.FromSlice(out)
}

// ShrinkElements yields one candidate per position per proposed shrink:
// for each index, every value elementStep(xs[i]) produces is substituted in
// at that position in turn, leaving every other element untouched.
func ShrinkElements[T any](xs []T, elementStep func(T) seq.Seq[T]) seq.Seq[[]T] {
	out := make([][]T, 0, len(xs))
	for i, v := range xs {
		shrinks := elementStep(v)
		for {
			nv, ok := shrinks.Next()
			if !ok {
				break
			}
			cand := append([]T(nil), xs...)
			cand[i] = nv
			out = append(out, cand)
		}
	}
	return seq.FromSlice(out)
}

// Container is the collection shrink strategy of §4.4: remove-chunks
// (always starting with the empty container), then shrink-each-element.
func Container[T any](xs []T, elementStep func(T) seq.Seq[T]) seq.Seq[[]T] {
	return seq.Concat(RemoveChunks(xs), ShrinkElements(xs, elementStep))
}
