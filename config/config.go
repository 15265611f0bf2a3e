// Package config parses the whitespace-separated key=value configuration
// string that an out-of-core layer reads from the environment (conventionally
// RC_PARAMS) and turns into check.TestParams plus the handful of extra knobs
// (verbose_progress, verbose_shrinking, reproduce) the driver itself doesn't
// own. Grounded on rapidcheck's src/detail/MapParser.h and
// Configuration.cpp/.h (original_source) for the quoted key=value grammar and
// the "unknown keys ignored, malformed values raise synchronously" contract;
// no pack repo ships a matching inline scanner (spf13/viper targets file
// formats and structured env binding, not this DSL), so this package is
// hand-written against the standard library — see DESIGN.md.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucaskalb/gorapid/check"
	"github.com/lucaskalb/gorapid/reproduce"
)

// ConfigurationError reports a malformed configuration string: an
// unterminated quote, a key with no '=', or a value that doesn't parse as
// the type its key expects.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s", e.Reason)
}

// Configuration is the parsed form of a configuration string: a TestParams
// overlay plus the listener-facing verbosity flags and any reproduce tokens
// keyed by property id, per §6.
type Configuration struct {
	Params           check.TestParams
	VerboseProgress  bool
	VerboseShrinking bool
	Reproduce        map[string]reproduce.Token
}

// DefaultConfiguration wraps check.DefaultParams with no verbosity and no
// reproduce tokens, the baseline Parse overlays onto.
func DefaultConfiguration() Configuration {
	return Configuration{Params: check.DefaultParams()}
}

// Parse reads s as a whitespace-separated list of key=value, key="value", or
// key='value' pairs and overlays recognized keys onto DefaultConfiguration.
// Unknown keys are ignored per §6; a malformed value for a recognized key
// returns a *ConfigurationError.
func Parse(s string) (Configuration, error) {
	cfg := DefaultConfiguration()
	pairs, err := tokenize(s)
	if err != nil {
		return Configuration{}, err
	}
	for _, p := range pairs {
		if err := apply(&cfg, p.key, p.value); err != nil {
			return Configuration{}, err
		}
	}
	return cfg, nil
}

// FromEnv reads and parses the configuration string from the named
// environment variable, returning DefaultConfiguration unchanged if it is
// unset — mirroring src/detail/Configuration.cpp's loadConfiguration wrapping
// std::getenv.
func FromEnv(name string) (Configuration, error) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return DefaultConfiguration(), nil
	}
	return Parse(raw)
}

type pair struct{ key, value string }

// tokenize scans s into key=value pairs, honoring single- and double-quoted
// values (which may contain whitespace) and plain unquoted values (which may
// not).
func tokenize(s string) ([]pair, error) {
	var pairs []pair
	i, n := 0, len(s)
	for i < n {
		for i < n && isSpace(s[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n && s[i] != '=' && !isSpace(s[i]) {
			i++
		}
		if i >= n || s[i] != '=' {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("missing '=' in %q", s[start:i])}
		}
		key := s[start:i]
		i++ // consume '='

		var value string
		if i < n && (s[i] == '"' || s[i] == '\'') {
			quote := s[i]
			i++
			valStart := i
			for i < n && s[i] != quote {
				i++
			}
			if i >= n {
				return nil, &ConfigurationError{Reason: fmt.Sprintf("unterminated quote for key %q", key)}
			}
			value = s[valStart:i]
			i++ // consume closing quote
		} else {
			valStart := i
			for i < n && !isSpace(s[i]) {
				i++
			}
			value = s[valStart:i]
		}
		pairs = append(pairs, pair{key: key, value: value})
	}
	return pairs, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func apply(cfg *Configuration, key, value string) error {
	switch key {
	case "seed":
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return badValue(key, value)
		}
		cfg.Params.Seed = v
	case "max_success":
		v, err := parseNonNegativeInt(value)
		if err != nil {
			return badValue(key, value)
		}
		cfg.Params.MaxSuccess = v
	case "max_size":
		v, err := parseNonNegativeInt(value)
		if err != nil {
			return badValue(key, value)
		}
		cfg.Params.MaxSize = v
	case "max_discard_ratio":
		v, err := parseNonNegativeInt(value)
		if err != nil {
			return badValue(key, value)
		}
		cfg.Params.MaxDiscardRatio = v
	case "noshrink":
		v, err := parseBit(value)
		if err != nil {
			return badValue(key, value)
		}
		cfg.Params.DisableShrinking = v
	case "verbose_progress":
		v, err := parseBit(value)
		if err != nil {
			return badValue(key, value)
		}
		cfg.VerboseProgress = v
	case "verbose_shrinking":
		v, err := parseBit(value)
		if err != nil {
			return badValue(key, value)
		}
		cfg.VerboseShrinking = v
	case "reproduce":
		id, token, err := decodeReproduce(value)
		if err != nil {
			return err
		}
		if cfg.Reproduce == nil {
			cfg.Reproduce = map[string]reproduce.Token{}
		}
		cfg.Reproduce[id] = token
	}
	// unrecognized keys are ignored, per §6.
	return nil
}

func badValue(key, value string) error {
	return &ConfigurationError{Reason: fmt.Sprintf("invalid value %q for key %q", value, key)}
}

func parseNonNegativeInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("not a non-negative integer")
	}
	return v, nil
}

func parseBit(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("not 0 or 1")
	}
}

// decodeReproduce splits the `reproduce` value's "id:token" form and decodes
// the token half with the reproduce package's codec.
func decodeReproduce(value string) (string, reproduce.Token, error) {
	id, encoded, ok := strings.Cut(value, ":")
	if !ok {
		return "", reproduce.Token{}, &ConfigurationError{Reason: fmt.Sprintf("reproduce value %q missing id:token separator", value)}
	}
	token, err := reproduce.Decode(encoded)
	if err != nil {
		return "", reproduce.Token{}, &ConfigurationError{Reason: fmt.Sprintf("reproduce token for %q: %v", id, err)}
	}
	return id, token, nil
}
