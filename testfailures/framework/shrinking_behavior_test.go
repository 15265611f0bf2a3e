//go:build demo

// Package framework demonstrates the search driver's behavior around
// intentionally falsified properties — shrink descent, reproduce tokens,
// give-up accounting — grounded on the teacher's
// testfailures/framework/*_test.go files, rewritten against check.Run
// directly instead of prop.ForAll's runSequential/runParallel split (this
// engine has no parallel case execution; see DESIGN.md).
package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/gorapid/check"
	"github.com/lucaskalb/gorapid/prop"
	"github.com/lucaskalb/gorapid/reproduce"
)

// TestFailureCodePathShrinksToSmallestNegative exercises the full
// Failure + shrink-descent path end to end and confirms the reproduce token
// it returns replays the same description.
func TestFailureCodePathShrinksToSmallestNegative(t *testing.T) {
	property := prop.ToProperty1(func(x int) prop.Outcome {
		return prop.FromBool(x >= 0)
	})
	params := check.DefaultParams()
	params.Seed = 99

	result := check.Run(property, params, nil)
	require.Equal(t, check.StatusFailure, result.Status)
	assert.Equal(t, []string{"int: -1"}, result.CounterExample)

	replayed := check.ReproduceProperty(property, result.Reproduce)
	assert.Equal(t, check.StatusFailure, replayed.Status)
	assert.Equal(t, result.Description, replayed.Description)
}

// TestReproduceTokenSurvivesEncoding confirms a Failure's Reproduce token
// round-trips through the opaque string encoding a user would paste into a
// regression test, per §6.
func TestReproduceTokenSurvivesEncoding(t *testing.T) {
	property := prop.ToProperty1(func(x int) prop.Outcome {
		return prop.FromBool(x >= 0)
	})
	params := check.DefaultParams()
	params.Seed = 99

	result := check.Run(property, params, nil)
	require.Equal(t, check.StatusFailure, result.Status)

	encoded := reproduce.Encode(result.Reproduce)
	decoded, err := reproduce.Decode(encoded)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(result.Reproduce))

	replayed := check.ReproduceProperty(property, decoded)
	assert.Equal(t, check.StatusFailure, replayed.Status)
}

// TestGiveUpAfterDiscardThreshold demonstrates §4.8's discard accounting:
// a property that always discards gives up once num_discarded exceeds
// max_discard_ratio * max_success (spec §8 end-to-end scenario 5).
func TestGiveUpAfterDiscardThreshold(t *testing.T) {
	property := prop.ToProperty1(func(int) prop.Outcome {
		prop.PreCondition(false)
		return prop.Ok()
	})
	params := check.DefaultParams()
	params.MaxSuccess = 10
	params.MaxDiscardRatio = 5

	result := check.Run(property, params, nil)
	assert.Equal(t, check.StatusGaveUp, result.Status)
	assert.Equal(t, 0, result.NumSuccess)
}
