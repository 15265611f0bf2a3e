// Package check implements the search-and-shrink driver: run a property
// across a bounded number of cases, pacing the size hint per §4.8, and on
// failure descend the shrink tree to a locally minimal counter-example.
// Grounded on rapidcheck/detail/Check.hpp's main loop (original_source);
// check.Run is the direct, single-threaded replacement for the teacher's
// prop.runSequential. runParallel's goroutine-based case execution is
// dropped per the spec's "not concurrent ... does not parallelize case
// execution" Non-goal — see DESIGN.md.
package check

// TestParams controls one Run invocation, matching §3/§6's external
// surface exactly.
type TestParams struct {
	// Seed is the base seed every case's random source is derived from.
	Seed uint64
	// MaxSuccess is the number of passing cases required to conclude
	// Success.
	MaxSuccess int
	// MaxSize is the largest size hint the pacing schedule will present.
	MaxSize int
	// MaxDiscardRatio bounds num_discarded / MaxSuccess before the driver
	// gives up.
	MaxDiscardRatio int
	// DisableShrinking skips the shrink descent on failure, returning the
	// root counter-example directly.
	DisableShrinking bool
	// ShrinkTries bounds how many times the driver re-evaluates a
	// shrink candidate that came back non-failure before accepting that
	// verdict, tolerating flaky predicates (§4.8, Open Question (b)).
	ShrinkTries int
}

// DefaultParams mirrors §3's documented defaults: 100 successes, size capped
// at 100, a discard ratio of 10 (ten discards tolerated per required
// success), shrinking enabled, and one retry on a flaky shrink candidate
// before its non-failure verdict is accepted. ShrinkTries only bounds
// per-candidate re-evaluation in evaluateCandidate; it does not cap the
// depth of the shrink descent itself, which findLocalMinWithRetries runs
// unbounded regardless of this value.
func DefaultParams() TestParams {
	return TestParams{
		Seed:             0,
		MaxSuccess:       100,
		MaxSize:          100,
		MaxDiscardRatio:  10,
		DisableShrinking: false,
		ShrinkTries:      1,
	}
}
