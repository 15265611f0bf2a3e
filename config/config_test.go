package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/gorapid/config"
	"github.com/lucaskalb/gorapid/reproduce"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfiguration(), cfg)
}

func TestParseOverridesRecognizedKeys(t *testing.T) {
	cfg, err := config.Parse(`seed=42 max_success=10 max_size=5 max_discard_ratio=3 noshrink=1 verbose_progress=1 verbose_shrinking=1`)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Params.Seed)
	assert.Equal(t, 10, cfg.Params.MaxSuccess)
	assert.Equal(t, 5, cfg.Params.MaxSize)
	assert.Equal(t, 3, cfg.Params.MaxDiscardRatio)
	assert.True(t, cfg.Params.DisableShrinking)
	assert.True(t, cfg.VerboseProgress)
	assert.True(t, cfg.VerboseShrinking)
}

func TestParseQuotedValues(t *testing.T) {
	cfg, err := config.Parse(`seed="42" max_size='7'`)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Params.Seed)
	assert.Equal(t, 7, cfg.Params.MaxSize)
}

func TestParseUnknownKeyIgnored(t *testing.T) {
	cfg, err := config.Parse("unknown_key=banana seed=5")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), cfg.Params.Seed)
}

func TestParseMalformedValueErrors(t *testing.T) {
	_, err := config.Parse("max_size=notanumber")
	require.Error(t, err)
	var cerr *config.ConfigurationError
	require.ErrorAs(t, err, &cerr)
}

func TestParseMissingEqualsErrors(t *testing.T) {
	_, err := config.Parse("seed")
	require.Error(t, err)
}

func TestParseUnterminatedQuoteErrors(t *testing.T) {
	_, err := config.Parse(`seed="42`)
	require.Error(t, err)
}

func TestParseReproduceRoundTrips(t *testing.T) {
	token := reproduce.Token{Seed: 7, Size: 3, ShrinkPath: []int{1, 0, 2}}
	encoded := reproduce.Encode(token)

	cfg, err := config.Parse("reproduce=" + quote("my-prop:"+encoded))
	require.NoError(t, err)

	got, ok := cfg.Reproduce["my-prop"]
	require.True(t, ok)
	assert.True(t, got.Equal(token))
}

func quote(s string) string { return `"` + s + `"` }

func TestFromEnvUnsetReturnsDefault(t *testing.T) {
	os.Unsetenv("GORAPID_TEST_PARAMS_UNSET")
	cfg, err := config.FromEnv("GORAPID_TEST_PARAMS_UNSET")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfiguration(), cfg)
}

func TestFromEnvParsesSetValue(t *testing.T) {
	t.Setenv("GORAPID_TEST_PARAMS_SET", "seed=99")
	cfg, err := config.FromEnv("GORAPID_TEST_PARAMS_SET")
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Params.Seed)
}
