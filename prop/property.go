package prop

import (
	"fmt"
	"reflect"

	"github.com/lucaskalb/gorapid/arbitrary"
	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// ToProperty1 wraps a one-argument case callable into a
// gen.Generator[CaseDescription], drawing A1 from its registered Arbitrary.
func ToProperty1[A1 any](f func(A1) Outcome) gen.Generator[CaseDescription] {
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[CaseDescription] {
		args := arbitrary.For[A1]().Generate(r, size)
		return shrinkable.Map(args, func(a1 A1) CaseDescription {
			return runCase(
				func() Outcome { return f(a1) },
				func() []ExampleEntry { return []ExampleEntry{render(a1)} },
			)
		})
	})
}

// ToProperty2 is ToProperty1 for a two-argument case callable.
func ToProperty2[A1, A2 any](f func(A1, A2) Outcome) gen.Generator[CaseDescription] {
	args := gen.Tuple2Of(arbitrary.For[A1](), arbitrary.For[A2]())
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[CaseDescription] {
		return shrinkable.Map(args.Generate(r, size), func(t gen.Tuple2[A1, A2]) CaseDescription {
			return runCase(
				func() Outcome { return f(t.First, t.Second) },
				func() []ExampleEntry { return []ExampleEntry{render(t.First), render(t.Second)} },
			)
		})
	})
}

// ToProperty3 is ToProperty1 for a three-argument case callable.
func ToProperty3[A1, A2, A3 any](f func(A1, A2, A3) Outcome) gen.Generator[CaseDescription] {
	args := gen.Tuple3Of(arbitrary.For[A1](), arbitrary.For[A2](), arbitrary.For[A3]())
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[CaseDescription] {
		return shrinkable.Map(args.Generate(r, size), func(t gen.Tuple3[A1, A2, A3]) CaseDescription {
			return runCase(
				func() Outcome { return f(t.First, t.Second, t.Third) },
				func() []ExampleEntry { return []ExampleEntry{render(t.First), render(t.Second), render(t.Third)} },
			)
		})
	})
}

// ToProperty4 is ToProperty1 for a four-argument case callable.
func ToProperty4[A1, A2, A3, A4 any](f func(A1, A2, A3, A4) Outcome) gen.Generator[CaseDescription] {
	args := gen.Tuple4Of(arbitrary.For[A1](), arbitrary.For[A2](), arbitrary.For[A3](), arbitrary.For[A4]())
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[CaseDescription] {
		return shrinkable.Map(args.Generate(r, size), func(t gen.Tuple4[A1, A2, A3, A4]) CaseDescription {
			return runCase(
				func() Outcome { return f(t.First, t.Second, t.Third, t.Fourth) },
				func() []ExampleEntry {
					return []ExampleEntry{render(t.First), render(t.Second), render(t.Third), render(t.Fourth)}
				},
			)
		})
	})
}

// runCase installs a fresh Context for the duration of call, recovers a
// GenerationFailure or PreCondition panic into KindDiscard, and any other
// panic into KindFailure carrying its message — per §4.7/§7: generation
// failures discard, all other exceptions become failures.
func runCase(call func() Outcome, exampleFn func() []ExampleEntry) CaseDescription {
	ctx := &Context{}
	prev := currentContext
	currentContext = ctx
	defer func() { currentContext = prev }()

	outcome := safeCall(call)
	return CaseDescription{
		Outcome: outcome,
		Tags:    append([]string(nil), ctx.tags...),
		Example: safeExample(exampleFn),
	}
}

func safeCall(call func() Outcome) (outcome Outcome) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = outcomeFromPanic(rec)
		}
	}()
	return call()
}

func outcomeFromPanic(rec any) Outcome {
	switch e := rec.(type) {
	case gen.GenerationFailure:
		return Discard()
	case discardSignal:
		return Discard()
	case error:
		return Fail(e.Error())
	default:
		return FailF("%v", rec)
	}
}

// safeExample wraps a rendering thunk so a panic while forcing a lazily
// generated value (possible if a generator's value() fails at shrink time)
// produces a placeholder entry instead of aborting the driver, per §4.7's
// "render failures from generation ... as placeholder descriptions rather
// than aborting."
func safeExample(fn func() []ExampleEntry) func() []ExampleEntry {
	return func() (out []ExampleEntry) {
		defer func() {
			if recover() != nil {
				out = []ExampleEntry{{TypeName: "?", Rendered: "<generation failed>"}}
			}
		}()
		return fn()
	}
}

func render[T any](v T) ExampleEntry {
	return ExampleEntry{
		TypeName: reflect.TypeOf(v).String(),
		Rendered: fmt.Sprintf("%#v", v),
	}
}
