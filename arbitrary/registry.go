// Package arbitrary provides type-directed default generators, dispatched
// through a reflect.Type-keyed registry populated at init() — the idiomatic
// Go substitute for the blanket Arbitrary trait / template specialization
// the design notes call out (§4.6), since Go has no specialization
// mechanism of its own. Grounded on the teacher's per-type generator files
// (gen/int.go, gen/uint.go, gen/float64.go, gen/bool.go, gen/string.go),
// whose default-generator bodies are reproduced here against the new
// gen.Generator[T] shape.
package arbitrary

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/lucaskalb/gorapid/gen"
)

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]any{}
)

// Register installs g as the default generator for T, overwriting any
// previous registration. Intended to be called from package init()
// functions (as the builtins in this package do) or by callers wanting to
// override a built-in default for their own tests.
func Register[T any](g gen.Generator[T]) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeFor[T]()] = g
}

// For returns the registered default generator for T, panicking if none
// has been registered — mirroring the teacher's fail-fast behavior for an
// unregistered type, since there is no sensible zero-value generator.
func For[T any]() gen.Generator[T] {
	registryMu.RLock()
	defer registryMu.RUnlock()
	v, ok := registry[reflect.TypeFor[T]()]
	if !ok {
		panic(fmt.Sprintf("arbitrary: no generator registered for %s", reflect.TypeFor[T]().String()))
	}
	return v.(gen.Generator[T])
}

// Registered reports whether T has a registered default generator, without
// panicking.
func Registered[T any]() bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[reflect.TypeFor[T]()]
	return ok
}
