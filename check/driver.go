package check

import (
	"fmt"

	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/prop"
	"github.com/lucaskalb/gorapid/random"
	"github.com/lucaskalb/gorapid/reproduce"
	"github.com/lucaskalb/gorapid/seq"
	"github.com/lucaskalb/gorapid/shrinkable"
)

// Run drives property through up to params.MaxSuccess cases, paced by
// sizeFor, giving up if too large a fraction discard, and descending into
// find_local_min on the first failure. Grounded on
// rapidcheck/detail/Check.hpp's testProperty loop (original_source) and the
// teacher's prop.runSequential for the case/listener bookkeeping shape;
// unlike both, Run takes no metadata/reproduce-map pair — a caller who
// wants to replay a specific failure calls ReproduceProperty directly,
// since Go callers already hold the Generator value the C++ source instead
// looked up by a string id.
func Run(property gen.Generator[prop.CaseDescription], params TestParams, listener Listener) TestResult {
	if listener == nil {
		listener = NoopListener{}
	}

	numSuccess := 0
	numDiscarded := 0
	recentDiscards := 0
	tagCounts := map[string]int{}

	for numSuccess < params.MaxSuccess {
		size := clamp(sizeFor(params, numSuccess)+recentDiscards/10, 0, params.MaxSize)
		caseSeed := avalanche(params.Seed + uint64(numSuccess) + uint64(recentDiscards))
		r := random.FromSeed(caseSeed)

		s := func() (out shrinkable.Shrinkable[prop.CaseDescription]) {
			// A panic raised by Generate itself (not by Value()) is deferred
			// into the root's Value(), where forceCaseDescription turns it
			// into a Discard.
			defer func() {
				if rec := recover(); rec != nil {
					out = shrinkable.Shrink(
						func() prop.CaseDescription { panic(rec) },
						seq.Empty[shrinkable.Shrinkable[prop.CaseDescription]],
					)
				}
			}()
			return property.Generate(&r, size)
		}()
		desc := forceCaseDescription(s)

		switch desc.Outcome.Kind {
		case prop.KindSuccess:
			numSuccess++
			recentDiscards = 0
			for _, tag := range desc.Tags {
				tagCounts[tag]++
			}
			listener.OnCaseFinished(desc)

		case prop.KindDiscard:
			numDiscarded++
			recentDiscards++
			listener.OnCaseFinished(desc)
			if numDiscarded > params.MaxDiscardRatio*params.MaxSuccess {
				result := TestResult{
					Status:      StatusGaveUp,
					NumSuccess:  numSuccess,
					Description: fmt.Sprintf("gave up after %d discards (%d successes)", numDiscarded, numSuccess),
				}
				listener.OnTestFinished(result)
				return result
			}

		case prop.KindFailure:
			result := concludeFailure(s, desc, caseSeed, size, params, listener, numSuccess)
			listener.OnTestFinished(result)
			return result
		}
	}

	result := TestResult{
		Status:          StatusSuccess,
		NumSuccess:      numSuccess,
		TagDistribution: tagCounts,
	}
	listener.OnTestFinished(result)
	return result
}

// concludeFailure runs the shrink descent (unless disabled) and builds the
// Failure TestResult, per §4.8's "On Failure" clause.
func concludeFailure(
	root shrinkable.Shrinkable[prop.CaseDescription],
	rootDesc prop.CaseDescription,
	caseSeed uint64,
	size int,
	params TestParams,
	listener Listener,
	numSuccess int,
) TestResult {
	if params.DisableShrinking {
		return TestResult{
			Status:         StatusFailure,
			NumSuccess:     numSuccess,
			Description:    rootDesc.Outcome.Description,
			CounterExample: renderExample(rootDesc),
			Reproduce:      reproduce.Token{Seed: caseSeed, Size: size},
		}
	}

	final, path := findLocalMinWithRetries(root, params.ShrinkTries, listener)
	return TestResult{
		Status:         StatusFailure,
		NumSuccess:     numSuccess,
		Description:    final.Outcome.Description,
		CounterExample: renderExample(final),
		Reproduce:      reproduce.Token{Seed: caseSeed, Size: size, ShrinkPath: path},
		NumShrinks:     len(path),
	}
}

// findLocalMinWithRetries is shrinkable.FindLocalMin, inlined so every
// candidate evaluated can be reported to the listener and so a verdict
// that isn't a failure can be re-evaluated up to shrinkTries times before
// being accepted as "doesn't reproduce" (§4.8: "tolerate flakiness in the
// predicate").
func findLocalMinWithRetries(
	root shrinkable.Shrinkable[prop.CaseDescription],
	shrinkTries int,
	listener Listener,
) (prop.CaseDescription, []int) {
	cur := root
	curDesc := root.Value()
	path := []int{}

	for {
		children := safeShrinks(cur)
		idx := 0
		advanced := false
		for {
			child, ok := children.Next()
			if !ok {
				break
			}
			desc, accepted := evaluateCandidate(child, shrinkTries)
			listener.OnShrinkTried(desc, accepted)
			if accepted {
				cur = child
				curDesc = desc
				path = append(path, idx)
				advanced = true
				break
			}
			idx++
		}
		if !advanced {
			return curDesc, path
		}
	}
}

// evaluateCandidate forces child's root once, retrying (re-forcing) up to
// shrinkTries additional times if the first verdict isn't a failure, so a
// flaky predicate gets a chance to reproduce the failure before the
// candidate is rejected outright.
func evaluateCandidate(child shrinkable.Shrinkable[prop.CaseDescription], shrinkTries int) (prop.CaseDescription, bool) {
	desc := forceCaseDescription(child)
	if desc.IsFailure() {
		return desc, true
	}
	for i := 0; i < shrinkTries; i++ {
		desc = forceCaseDescription(child)
		if desc.IsFailure() {
			return desc, true
		}
	}
	return desc, false
}

// forceCaseDescription forces s's root value, converting a GenerationFailure
// (or any other panic) raised while doing so into a synthetic Discard —
// never a Failure — so a generator that cannot produce a value at this
// node never masquerades as a falsified property (§3: "Generators may fail
// ... this is not a test failure") and never aborts the driver (§7 (5)).
func forceCaseDescription(s shrinkable.Shrinkable[prop.CaseDescription]) (desc prop.CaseDescription) {
	defer func() {
		if rec := recover(); rec != nil {
			reason := fmt.Sprintf("%v", rec)
			if gf, ok := rec.(gen.GenerationFailure); ok {
				reason = gf.Reason
			}
			desc = prop.CaseDescription{
				Outcome: prop.Outcome{Kind: prop.KindDiscard, Description: reason},
				Example: func() []prop.ExampleEntry { return nil },
			}
		}
	}()
	return s.Value()
}

// safeShrinks guards against a panic raised while a node computes its own
// children sequence (as opposed to while iterating it, which seq.Seq.Next
// already recovers from internally): such a node is treated as exhausted.
func safeShrinks(s shrinkable.Shrinkable[prop.CaseDescription]) (out seq.Seq[shrinkable.Shrinkable[prop.CaseDescription]]) {
	defer func() {
		if recover() != nil {
			out = seq.Empty[shrinkable.Shrinkable[prop.CaseDescription]]()
		}
	}()
	return s.Shrinks()
}

func renderExample(desc prop.CaseDescription) []string {
	if desc.Example == nil {
		return nil
	}
	entries := desc.Example()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fmt.Sprintf("%s: %s", e.TypeName, e.Rendered)
	}
	return out
}

// ReproduceProperty replays exactly the case token describes: rebuilds the
// Random from token.Seed, regenerates at token.Size, walks token.ShrinkPath,
// and requires the terminus to be a Failure. Per §4.8/§7 (5): any other
// outcome at the terminus is an internal invariant violation, reported as
// Error rather than panicking.
func ReproduceProperty(property gen.Generator[prop.CaseDescription], token reproduce.Token) TestResult {
	r := random.FromSeed(token.Seed)
	root := property.Generate(&r, token.Size)

	node, ok := shrinkable.WalkPath(root, token.ShrinkPath)
	if !ok {
		return TestResult{Status: StatusError, Description: "reproduce: shrink path out of range"}
	}
	desc := node.Value()
	if !desc.IsFailure() {
		return TestResult{Status: StatusError, Description: "reproduce: terminus is not a failure"}
	}
	return TestResult{
		Status:         StatusFailure,
		Description:    desc.Outcome.Description,
		CounterExample: renderExample(desc),
		Reproduce:      token,
		NumShrinks:     len(token.ShrinkPath),
	}
}

// sizeFor spreads sizes evenly across [0, max_size] regardless of
// max_success, guaranteeing max_size is hit at least once when
// max_success > 1 (§4.8 "Size pacing").
func sizeFor(params TestParams, i int) int {
	maxSize := params.MaxSize
	if maxSize <= 0 {
		return 0
	}
	cycle := maxSize + 1
	maxSuccess := params.MaxSuccess
	if maxSuccess <= 0 {
		return i % cycle
	}
	evenSpan := (maxSuccess / cycle) * cycle
	if i < evenSpan {
		return i % cycle
	}
	remaining := maxSuccess - evenSpan
	if remaining <= 1 {
		return maxSize
	}
	pos := i - evenSpan
	return (pos * maxSize) / (remaining - 1)
}

// avalanche mixes a seed through one splitmix64 round, the same step
// random.FromSeed uses per key word, so a case-seed derived here expands
// into an equally well-distributed 256-bit key.
func avalanche(x uint64) uint64 {
	z := x + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
