package quick

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucaskalb/gorapid/check"
	"github.com/lucaskalb/gorapid/prop"
)

func TestCheckSucceedsOnTrueProperty(t *testing.T) {
	result := ForAll1(t, func(x int) prop.Outcome {
		return prop.FromBool(x+x == 2*x)
	}, WithSeed(0), WithMaxSuccess(50))

	assert.Equal(t, check.StatusSuccess, result.Status)
	assert.Equal(t, 50, result.NumSuccess)
}

// Check's Failure/GaveUp reporting paths funnel straight into t.Fatalf, so
// exercising them with a genuinely failing property here would fail this
// test binary; check/driver_test.go already covers the underlying
// check.Run Failure/GaveUp behavior Check reports on top of.

func TestCheckTwoArgProperty(t *testing.T) {
	result := ForAll2(t, func(a, b int8) prop.Outcome {
		return prop.FromBool(a+b == b+a)
	}, WithSeed(1), WithMaxSuccess(30))

	assert.Equal(t, check.StatusSuccess, result.Status)
}

func TestCheckVerboseOptionsDoNotPanic(t *testing.T) {
	result := ForAll1(t, func(x int) prop.Outcome {
		return prop.Ok()
	}, WithMaxSuccess(5), WithVerboseProgress(), WithVerboseShrinking())

	assert.Equal(t, check.StatusSuccess, result.Status)
}
