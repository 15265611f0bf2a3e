package statemachine

import (
	"fmt"

	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// maxParallelBranchLength bounds each branch of a ParallelCommands so that
// RunParallel's interleaving enumeration (§4.9: "enumerate interleavings")
// stays tractable — C(2*maxParallelBranchLength, maxParallelBranchLength)
// merges in the worst case. Per spec Open Question (c), this package
// preserves the source's "no true concurrency" semantics: the two branches
// never actually run on separate goroutines, so there is no race to
// discover by growing the branches arbitrarily large, only more merges to
// check.
const maxParallelBranchLength = 5

// ParallelCommands is a command sequence split into a Prefix (run first,
// sequentially) followed by two branches that a real implementation would
// run concurrently. Each branch's Precondition chain is required to hold
// against the model left by Prefix alone — §4.9: "no precondition on the
// other branch's intermediate states."
type ParallelCommands[Model, Sut any] struct {
	Prefix CommandSequence[Model, Sut]
	Left   CommandSequence[Model, Sut]
	Right  CommandSequence[Model, Sut]
}

// GenParallelCommands builds a Generator of a ParallelCommands: a prefix via
// GenCommands, then two branches drawn independently (via a random split,
// so neither leaks entropy into the other) from the model the prefix
// produced, each bounded to maxParallelBranchLength commands.
func GenParallelCommands[Model, Sut any](
	initial Model,
	choose func(model Model) gen.Generator[Command[Model, Sut]],
) gen.Generator[ParallelCommands[Model, Sut]] {
	prefixGen := GenCommands(initial, choose)
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[ParallelCommands[Model, Sut]] {
		prefixR, branchesR := r.Split()
		prefixShrinkable := prefixGen.Generate(&prefixR, size)
		prefix := prefixShrinkable.Value()
		model := replayModel(initial, prefix)

		branchSize := size
		if branchSize > maxParallelBranchLength {
			branchSize = maxParallelBranchLength
		}
		leftR, rightR := branchesR.Split()
		left := boundedCommands(initial, model, choose, &leftR, branchSize)
		right := boundedCommands(initial, model, choose, &rightR, branchSize)

		return shrinkable.Map(prefixShrinkable, func(p CommandSequence[Model, Sut]) ParallelCommands[Model, Sut] {
			return ParallelCommands[Model, Sut]{Prefix: p, Left: left, Right: right}
		})
	})
}

// boundedCommands draws a command sequence starting from model (not
// initial), clamped to maxParallelBranchLength regardless of size.
func boundedCommands[Model, Sut any](
	initial, model Model,
	choose func(Model) gen.Generator[Command[Model, Sut]],
	r *random.Random,
	size int,
) CommandSequence[Model, Sut] {
	length := int(random.UniformUint64(r, uint64(maxParallelBranchLength)+1))
	elems := make([]Command[Model, Sut], 0, length)
	cur := model
	for i := 0; i < length; i++ {
		stepR, next := r.Split()
		*r = next
		cmdShrinkable, ok := drawPrecondition(&stepR, size, cur, choose)
		if !ok {
			break
		}
		cmd := cmdShrinkable.Value()
		elems = append(elems, cmd)
		cur = cmd.Apply(cur)
	}
	return CommandSequence[Model, Sut]{Commands: elems}
}

func replayModel[Model, Sut any](initial Model, seq CommandSequence[Model, Sut]) Model {
	model := initial
	for _, cmd := range seq.Commands {
		model = cmd.Apply(model)
	}
	return model
}

// ParallelResult is the outcome of RunParallel: whether at least one
// enumerated interleaving of Left and Right executed against sut without
// error, and the first failing interleaving's error, if every one failed.
type ParallelResult struct {
	// Linearizable is true iff some interleaving of Left's and Right's
	// commands, run in order against sut after Prefix, completed with no
	// command reporting an error.
	Linearizable bool
	// TriedInterleavings is how many distinct merges of Left/Right were
	// attempted before concluding.
	TriedInterleavings int
	// FirstErr is the error from the first interleaving tried, reported
	// when none succeeded (Linearizable is false).
	FirstErr error
}

// RunParallel runs pc.Prefix sequentially against sut and model, then
// enumerates every interleaving of pc.Left and pc.Right that preserves each
// branch's internal order, running each candidate interleaving against sut
// in turn and reporting Linearizable once one succeeds. Per Open Question
// (c), this simulates "could some valid concurrent execution have produced
// a consistent result" by retrying the live sut under each candidate
// ordering rather than by actually racing two goroutines against it —
// documented in DESIGN.md as this package's resolution of that question.
func RunParallel[Model, Sut any](model Model, sut Sut, pc ParallelCommands[Model, Sut]) ParallelResult {
	prefixResult := RunCommands(model, sut, pc.Prefix)
	if prefixResult.Err != nil {
		return ParallelResult{FirstErr: fmt.Errorf("prefix: %w", prefixResult.Err)}
	}

	var firstErr error
	tried := 0
	ok := forEachInterleaving(pc.Left.Commands, pc.Right.Commands, func(merged []Command[Model, Sut]) bool {
		tried++
		result := RunCommands(prefixResult.Model, sut, CommandSequence[Model, Sut]{Commands: merged})
		if result.Err == nil {
			return true
		}
		if firstErr == nil {
			firstErr = result.Err
		}
		return false
	})

	return ParallelResult{Linearizable: ok, TriedInterleavings: tried, FirstErr: firstErrIfNot(ok, firstErr)}
}

func firstErrIfNot(ok bool, err error) error {
	if ok {
		return nil
	}
	return err
}

// forEachInterleaving calls visit with every order-preserving merge of left
// and right, stopping (and returning true) as soon as visit returns true.
// Returns false if every merge was tried and none succeeded.
func forEachInterleaving[Model, Sut any](left, right []Command[Model, Sut], visit func([]Command[Model, Sut]) bool) bool {
	buf := make([]Command[Model, Sut], 0, len(left)+len(right))
	return mergeFrom(left, right, buf, visit)
}

func mergeFrom[Model, Sut any](left, right, acc []Command[Model, Sut], visit func([]Command[Model, Sut]) bool) bool {
	if len(left) == 0 && len(right) == 0 {
		return visit(append([]Command[Model, Sut](nil), acc...))
	}
	if len(left) > 0 {
		if mergeFrom(left[1:], right, append(acc, left[0]), visit) {
			return true
		}
	}
	if len(right) > 0 {
		if mergeFrom(left, right[1:], append(acc, right[0]), visit) {
			return true
		}
	}
	return false
}
