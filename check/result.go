package check

import "github.com/lucaskalb/gorapid/reproduce"

// TestResult is the outcome of one Run, one of four shapes distinguished by
// Status. Grounded on rapidcheck/detail/TestResult.hpp's SuccessResult /
// FailureResult / GaveUpResult union (original_source), flattened into a
// single tagged struct since Go has no closed sum type for this to wrap
// comfortably.
type TestResult struct {
	Status Status

	// NumSuccess is the number of cases that ran to Success before Run
	// concluded, populated in every Status.
	NumSuccess int

	// TagDistribution counts, across every successful case, how many times
	// each tag recorded via prop.Tag appeared. Success only.
	TagDistribution map[string]int

	// Description is a human-readable explanation: for Failure, the
	// falsified case's Outcome.Description; for GaveUp, why; for Error, the
	// driver-level error's message.
	Description string

	// CounterExample is the locally-minimal failing example's rendered
	// arguments, deepest-first omitted — just the final failing case's
	// Example(). Failure only.
	CounterExample []string

	// Reproduce replays exactly the final failing case: the case the shrink
	// descent started from, followed down the recorded shrink path to the
	// local minimum. Failure only.
	Reproduce reproduce.Token

	// NumShrinks is how many accepted shrink steps the descent took before
	// reaching a local minimum. Failure only.
	NumShrinks int
}

// Status tags which of the four TestResult shapes a result carries.
type Status int

const (
	// StatusSuccess means MaxSuccess cases passed without a failure;
	// discarded cases do not count toward MaxSuccess.
	StatusSuccess Status = iota
	// StatusFailure means a case falsified the property; CounterExample,
	// Reproduce, and NumShrinks are populated.
	StatusFailure
	// StatusGaveUp means too great a fraction of cases were discarded
	// before MaxSuccess could be reached.
	StatusGaveUp
	// StatusError means the driver itself could not proceed (e.g. during a
	// replay the token's shrink path was out of range, or its terminus was
	// not a failure).
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusGaveUp:
		return "gave up"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
