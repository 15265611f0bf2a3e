// Package statemachine builds generators of command sequences against a
// model: at each step a Command's precondition filters which commands are
// legal against the current Model, its Apply advances the Model, and its
// Run drives the real system under test, comparing outcomes. Grounded on
// §4.9/§9's genCommands/RunCommands design and on the naming convention the
// teacher's own state_machine_test.go used (Command/Sut/Model), even
// though that test predates this package and is not itself reused.
package statemachine

import (
	"fmt"

	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/seq"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// Command is one step of a state-machine test: Precondition decides whether
// this command may legally run against model, Apply returns the model after
// running it, Run drives the real Sut and reports an error on mismatch, and
// Name labels the command for counter-example rendering.
type Command[Model, Sut any] interface {
	Precondition(model Model) bool
	Apply(model Model) Model
	Run(sut Sut, model Model) error
	Name() string
}

// CommandSequence is an ordered, generated list of commands to run against a
// System under test. It holds only the commands; the model states are
// recomputed from an initial model via each command's Apply.
type CommandSequence[Model, Sut any] struct {
	Commands []Command[Model, Sut]
}

// GenCommands builds a Generator of a command sequence: at each step it
// asks choose for a candidate against the current model, keeps it only if
// its Precondition holds (retrying choose up to a bounded number of times
// per slot before giving up on growing the sequence further), and threads
// the model forward via Apply. Length scales with size the same way
// gen.Container does.
func GenCommands[Model, Sut any](
	initial Model,
	choose func(model Model) gen.Generator[Command[Model, Sut]],
) gen.Generator[CommandSequence[Model, Sut]] {
	return gen.From(func(r *random.Random, size int) shrinkable.Shrinkable[CommandSequence[Model, Sut]] {
		lengthR, bodyR := r.Split()
		length := commandSequenceLength(&lengthR, size)

		elems := make([]shrinkable.Shrinkable[Command[Model, Sut]], 0, length)
		model := initial
		cur := bodyR
		for i := 0; i < length; i++ {
			stepR, next := cur.Split()
			cur = next

			cmdShrinkable, ok := drawPrecondition(&stepR, size, model, choose)
			if !ok {
				break
			}
			elems = append(elems, cmdShrinkable)
			model = cmdShrinkable.Value().Apply(model)
		}

		return commandsShrinkable(initial, elems)
	})
}

const maxPreconditionAttempts = 100

// drawPrecondition draws from choose(model) repeatedly (at growing size)
// until Precondition holds or the attempt budget is exhausted.
func drawPrecondition[Model, Sut any](
	r *random.Random,
	size int,
	model Model,
	choose func(Model) gen.Generator[Command[Model, Sut]],
) (shrinkable.Shrinkable[Command[Model, Sut]], bool) {
	for attempt := 0; attempt < maxPreconditionAttempts; attempt++ {
		attemptR, next := r.Split()
		*r = next
		candidate := choose(model).Generate(&attemptR, size+attempt)
		if candidate.Value().Precondition(model) {
			return candidate, true
		}
	}
	return shrinkable.Shrinkable[Command[Model, Sut]]{}, false
}

func commandSequenceLength(r *random.Random, size int) int {
	span := gen.ClampSize(size)
	if span > gen.NominalCeiling {
		span = gen.NominalCeiling
	}
	return int(random.UniformUint64(r, uint64(span)+1))
}

// commandsShrinkable turns a slice of per-command Shrinkables into a
// Shrinkable of the whole sequence, re-validating preconditions against the
// initial model after every candidate removal (§4.9: "re-validating
// preconditions after each candidate removal") — a candidate sequence whose
// surviving commands no longer chain validly is dropped, not offered.
func commandsShrinkable[Model, Sut any](
	initial Model,
	elems []shrinkable.Shrinkable[Command[Model, Sut]],
) shrinkable.Shrinkable[CommandSequence[Model, Sut]] {
	return shrinkable.Shrink(
		func() CommandSequence[Model, Sut] { return toSequence(elems) },
		func() seq.Seq[shrinkable.Shrinkable[CommandSequence[Model, Sut]]] {
			return seq.Concat(
				commandRemovalCandidates(initial, elems),
				commandSubstitutionCandidates(initial, elems),
			)
		},
	)
}

func toSequence[Model, Sut any](elems []shrinkable.Shrinkable[Command[Model, Sut]]) CommandSequence[Model, Sut] {
	cmds := make([]Command[Model, Sut], len(elems))
	for i, e := range elems {
		cmds[i] = e.Value()
	}
	return CommandSequence[Model, Sut]{Commands: cmds}
}

func commandRemovalCandidates[Model, Sut any](
	initial Model,
	elems []shrinkable.Shrinkable[Command[Model, Sut]],
) seq.Seq[shrinkable.Shrinkable[CommandSequence[Model, Sut]]] {
	var candidates []shrinkable.Shrinkable[CommandSequence[Model, Sut]]
	for chunk := len(elems); chunk >= 1; chunk-- {
		for start := 0; start+chunk <= len(elems); start++ {
			reduced := make([]shrinkable.Shrinkable[Command[Model, Sut]], 0, len(elems)-chunk)
			reduced = append(reduced, elems[:start]...)
			reduced = append(reduced, elems[start+chunk:]...)
			if !preconditionsChain(initial, reduced) {
				continue
			}
			candidates = append(candidates, commandsShrinkable(initial, reduced))
		}
	}
	return seq.FromSlice(candidates)
}

func commandSubstitutionCandidates[Model, Sut any](
	initial Model,
	elems []shrinkable.Shrinkable[Command[Model, Sut]],
) seq.Seq[shrinkable.Shrinkable[CommandSequence[Model, Sut]]] {
	var candidates []shrinkable.Shrinkable[CommandSequence[Model, Sut]]
	for i, e := range elems {
		childShrinks := e.Shrinks()
		for {
			child, ok := childShrinks.Next()
			if !ok {
				break
			}
			replaced := append([]shrinkable.Shrinkable[Command[Model, Sut]](nil), elems...)
			replaced[i] = child
			if !preconditionsChain(initial, replaced) {
				continue
			}
			candidates = append(candidates, commandsShrinkable(initial, replaced))
		}
	}
	return seq.FromSlice(candidates)
}

func preconditionsChain[Model, Sut any](initial Model, elems []shrinkable.Shrinkable[Command[Model, Sut]]) bool {
	model := initial
	for _, e := range elems {
		cmd := e.Value()
		if !cmd.Precondition(model) {
			return false
		}
		model = cmd.Apply(model)
	}
	return true
}

// StateMachineResult is the outcome of RunCommands: which prefix of the
// sequence executed, and the first command's Run error, if any.
type StateMachineResult[Model, Sut any] struct {
	Ran   int
	Model Model
	Err   error
}

// RunCommands executes sequence's commands in order against sut and model,
// stopping at the first Run error.
func RunCommands[Model, Sut any](model Model, sut Sut, sequence CommandSequence[Model, Sut]) StateMachineResult[Model, Sut] {
	cur := model
	for i, cmd := range sequence.Commands {
		if err := cmd.Run(sut, cur); err != nil {
			return StateMachineResult[Model, Sut]{Ran: i, Model: cur, Err: fmt.Errorf("%s: %w", cmd.Name(), err)}
		}
		cur = cmd.Apply(cur)
	}
	return StateMachineResult[Model, Sut]{Ran: len(sequence.Commands), Model: cur}
}
