package quick

import (
	"testing"

	"github.com/lucaskalb/gorapid/check"
	"github.com/lucaskalb/gorapid/config"
	"github.com/lucaskalb/gorapid/gen"
	"github.com/lucaskalb/gorapid/prop"
	"github.com/lucaskalb/gorapid/reproduce"
)

// Option overrides one field of the Configuration a Check/ForAll* call
// starts from (RC_PARAMS, if set, applied first; opts apply after, so a
// call-site override always wins over the environment).
type Option func(*config.Configuration)

// WithSeed overrides the base seed every case is derived from.
func WithSeed(seed uint64) Option {
	return func(c *config.Configuration) { c.Params.Seed = seed }
}

// WithMaxSuccess overrides how many passing cases are required for Success.
func WithMaxSuccess(n int) Option {
	return func(c *config.Configuration) { c.Params.MaxSuccess = n }
}

// WithMaxSize overrides the largest size hint the pacing schedule presents.
func WithMaxSize(n int) Option {
	return func(c *config.Configuration) { c.Params.MaxSize = n }
}

// WithMaxDiscardRatio overrides how many discards are tolerated per
// required success before the driver gives up.
func WithMaxDiscardRatio(n int) Option {
	return func(c *config.Configuration) { c.Params.MaxDiscardRatio = n }
}

// WithoutShrinking disables the shrink descent on failure.
func WithoutShrinking() Option {
	return func(c *config.Configuration) { c.Params.DisableShrinking = true }
}

// WithShrinkTries overrides how many times a non-failing shrink candidate is
// re-evaluated before being accepted as "doesn't reproduce" (§4.8).
func WithShrinkTries(n int) Option {
	return func(c *config.Configuration) { c.Params.ShrinkTries = n }
}

// WithVerboseProgress makes Check log every case via t.Logf as it runs.
func WithVerboseProgress() Option {
	return func(c *config.Configuration) { c.VerboseProgress = true }
}

// WithVerboseShrinking makes Check log every shrink candidate evaluated
// during the descent, and whether it was accepted.
func WithVerboseShrinking() Option {
	return func(c *config.Configuration) { c.VerboseShrinking = true }
}

// Check runs property to completion against t, reading RC_PARAMS first (if
// set) and then applying opts, and fails t on Failure, GaveUp, or Error;
// only the Failure message carries the counter-example and a reproduce
// token.
// Grounded on the teacher's prop.ForAll entry point, rebuilt atop
// check.Run/prop.ToProperty* instead of runSequential/runParallel per the
// spec's single-threaded Non-goal.
func Check(t *testing.T, property gen.Generator[prop.CaseDescription], opts ...Option) check.TestResult {
	t.Helper()

	cfg, err := config.FromEnv("RC_PARAMS")
	if err != nil {
		t.Fatalf("quick.Check: %v", err)
		return check.TestResult{Status: check.StatusError, Description: err.Error()}
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	result := check.Run(property, cfg.Params, verboseListener{t: t, cfg: cfg})
	reportResult(t, result)
	return result
}

// ForAll1 adapts a one-argument property callable via prop.ToProperty1 and
// runs it with Check.
func ForAll1[A1 any](t *testing.T, f func(A1) prop.Outcome, opts ...Option) check.TestResult {
	t.Helper()
	return Check(t, prop.ToProperty1(f), opts...)
}

// ForAll2 is ForAll1 for a two-argument property callable.
func ForAll2[A1, A2 any](t *testing.T, f func(A1, A2) prop.Outcome, opts ...Option) check.TestResult {
	t.Helper()
	return Check(t, prop.ToProperty2(f), opts...)
}

// ForAll3 is ForAll1 for a three-argument property callable.
func ForAll3[A1, A2, A3 any](t *testing.T, f func(A1, A2, A3) prop.Outcome, opts ...Option) check.TestResult {
	t.Helper()
	return Check(t, prop.ToProperty3(f), opts...)
}

// ForAll4 is ForAll1 for a four-argument property callable.
func ForAll4[A1, A2, A3, A4 any](t *testing.T, f func(A1, A2, A3, A4) prop.Outcome, opts ...Option) check.TestResult {
	t.Helper()
	return Check(t, prop.ToProperty4(f), opts...)
}

func reportResult(t *testing.T, result check.TestResult) {
	t.Helper()
	switch result.Status {
	case check.StatusSuccess:
		// nothing to report; t stays green.
	case check.StatusGaveUp:
		t.Fatalf("gave up after %d successes: %s", result.NumSuccess, result.Description)
	case check.StatusFailure:
		t.Fatalf(
			"falsified after %d successful cases and %d shrinks\ncounter-example: %v\ndescription: %s\nreproduce: %s",
			result.NumSuccess, result.NumShrinks, result.CounterExample, result.Description,
			reproduce.Encode(result.Reproduce),
		)
	case check.StatusError:
		t.Fatalf("internal error: %s", result.Description)
	}
}

// verboseListener logs via t.Logf when the Configuration asked for
// per-case or per-shrink progress; it is a no-op Listener otherwise.
type verboseListener struct {
	t   *testing.T
	cfg config.Configuration
}

func (l verboseListener) OnCaseFinished(desc prop.CaseDescription) {
	if !l.cfg.VerboseProgress {
		return
	}
	l.t.Logf("case: %s", desc.Outcome.Kind)
}

func (l verboseListener) OnShrinkTried(desc prop.CaseDescription, accepted bool) {
	if !l.cfg.VerboseShrinking {
		return
	}
	l.t.Logf("shrink candidate: %s accepted=%v", desc.Outcome.Kind, accepted)
}

func (l verboseListener) OnTestFinished(check.TestResult) {}
