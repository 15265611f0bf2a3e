package check

import "github.com/lucaskalb/gorapid/prop"

// Listener observes a Run in progress, for callers that want live feedback
// (a progress bar, a verbose log) beyond the final TestResult. Grounded on
// rapidcheck/detail/TestListener.hpp (original_source); the teacher's
// runSequential had no equivalent hook, since its only consumer was the
// *testing.T failure path.
type Listener interface {
	// OnCaseFinished is called once per generated case that succeeded or
	// was discarded, before the driver decides whether to continue. A
	// failing case is not reported here; it leads to OnShrinkTried calls
	// and then OnTestFinished.
	OnCaseFinished(desc prop.CaseDescription)
	// OnShrinkTried is called once per candidate the shrink descent
	// evaluates, with whether it was accepted as the new local minimum.
	OnShrinkTried(desc prop.CaseDescription, accepted bool)
	// OnTestFinished is called exactly once, with the concluded result.
	OnTestFinished(result TestResult)
}

// NoopListener implements Listener with no-ops; embed it to implement only
// the callbacks a particular Listener cares about.
type NoopListener struct{}

func (NoopListener) OnCaseFinished(prop.CaseDescription)       {}
func (NoopListener) OnShrinkTried(prop.CaseDescription, bool)  {}
func (NoopListener) OnTestFinished(TestResult)                {}
