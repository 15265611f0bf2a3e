// Package prop adapts plain user-authored callables into
// gen.Generator[CaseDescription] values the search driver in package check
// can run. Grounded on rapidcheck/detail/Property.hpp and Check.hpp
// (original_source) for the outcome-interception contract: unlike the
// source, which propagates CaseResult and GenerationFailure by throwing,
// this package returns an explicit Outcome value from every case callable,
// per the design note that exception-driven control flow "should be
// replaced with an explicit result type" — GenerationFailure remains the
// one panic-based signal (recovered here), since it must cross arbitrary
// generator call frames the user callable doesn't control.
package prop

import "fmt"

// Kind distinguishes the three ways a property case can conclude.
type Kind int

const (
	// KindSuccess means the case's assertions held.
	KindSuccess Kind = iota
	// KindFailure means the property was falsified.
	KindFailure
	// KindDiscard means a precondition was not met; neither pass nor fail.
	KindDiscard
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	case KindDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// Outcome is the result of one property-case callable invocation.
type Outcome struct {
	Kind        Kind
	Description string
}

// Ok is a successful Outcome.
func Ok() Outcome { return Outcome{Kind: KindSuccess} }

// Fail is a falsified Outcome carrying a human-readable description.
func Fail(description string) Outcome { return Outcome{Kind: KindFailure, Description: description} }

// FailF is Fail with fmt.Sprintf-style formatting.
func FailF(format string, args ...any) Outcome { return Fail(fmt.Sprintf(format, args...)) }

// Discard is an Outcome meaning the case's precondition was not satisfied.
func Discard() Outcome { return Outcome{Kind: KindDiscard} }

// FromBool loosens a plain boolean assertion into an Outcome: true is
// Success, false is Failure with a generic description (§4.7: "false ->
// Failure with the call-site expression as description" — Go has no
// call-site expression capture, so callers wanting a specific message
// should return Fail(msg) directly instead of a bare bool).
func FromBool(ok bool) Outcome {
	if ok {
		return Ok()
	}
	return Fail("assertion failed")
}

// FromError loosens an error return into an Outcome: nil is Success, a
// non-nil error is Failure with the error's message.
func FromError(err error) Outcome {
	if err == nil {
		return Ok()
	}
	return Fail(err.Error())
}

// ExampleEntry is one rendered argument in a CaseDescription's example.
type ExampleEntry struct {
	TypeName string
	Rendered string
}

// CaseDescription is the full record of one property-case execution: its
// Outcome, any tags recorded via Tag during the call, and a deferred thunk
// rendering the arguments that produced it (computed lazily — per §4.7,
// "lazily compute the example" — so a driver that never needs to print a
// passing case's arguments never pays the rendering cost).
type CaseDescription struct {
	Outcome Outcome
	Tags    []string
	Example func() []ExampleEntry
}

// IsFailure reports whether this case's Outcome is KindFailure; the
// predicate the search driver's FindLocalMin descent uses.
func (d CaseDescription) IsFailure() bool { return d.Outcome.Kind == KindFailure }
