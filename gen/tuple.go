package gen

import (
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// Tuple2 combines two generators, shrinking lexicographically: the first
// component exhausts its shrinks before the second component is touched,
// per shrinkable.Pair.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

func Tuple2Of[A, B any](ga Generator[A], gb Generator[B]) Generator[Tuple2[A, B]] {
	return From(func(r *random.Random, size int) shrinkable.Shrinkable[Tuple2[A, B]] {
		ra, rb := r.Split()
		*r = ra
		a := ga.Generate(&rb, size)
		rc, rd := r.Split()
		*r = rc
		b := gb.Generate(&rd, size)
		pair := shrinkable.Pair(a, b)
		return shrinkable.Map(pair, func(p shrinkable.Pair2[A, B]) Tuple2[A, B] {
			return Tuple2[A, B]{First: p.First, Second: p.Second}
		})
	})
}

// Tuple3 composes three generators via nested Tuple2Of pairing.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func Tuple3Of[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Tuple3[A, B, C]] {
	inner := Tuple2Of(Tuple2Of(ga, gb), gc)
	return Map(inner, func(t Tuple2[Tuple2[A, B], C]) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{First: t.First.First, Second: t.First.Second, Third: t.Second}
	})
}

// Tuple4 composes four generators.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func Tuple4Of[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[Tuple4[A, B, C, D]] {
	inner := Tuple2Of(Tuple3Of(ga, gb, gc), gd)
	return Map(inner, func(t Tuple2[Tuple3[A, B, C], D]) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{First: t.First.First, Second: t.First.Second, Third: t.First.Third, Fourth: t.Second}
	})
}

// Tuple5 composes five generators.
type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

func Tuple5Of[A, B, C, D, E any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E]) Generator[Tuple5[A, B, C, D, E]] {
	inner := Tuple2Of(Tuple4Of(ga, gb, gc, gd), ge)
	return Map(inner, func(t Tuple2[Tuple4[A, B, C, D], E]) Tuple5[A, B, C, D, E] {
		return Tuple5[A, B, C, D, E]{
			First: t.First.First, Second: t.First.Second, Third: t.First.Third,
			Fourth: t.First.Fourth, Fifth: t.Second,
		}
	})
}

// Tuple6 composes six generators.
type Tuple6[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

func Tuple6Of[A, B, C, D, E, F any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], ge Generator[E], gf Generator[F]) Generator[Tuple6[A, B, C, D, E, F]] {
	inner := Tuple2Of(Tuple5Of(ga, gb, gc, gd, ge), gf)
	return Map(inner, func(t Tuple2[Tuple5[A, B, C, D, E], F]) Tuple6[A, B, C, D, E, F] {
		return Tuple6[A, B, C, D, E, F]{
			First: t.First.First, Second: t.First.Second, Third: t.First.Third,
			Fourth: t.First.Fourth, Fifth: t.First.Fifth, Sixth: t.Second,
		}
	})
}
