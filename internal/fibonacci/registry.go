package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultFactory maintains a thread-safe registry of arbitrary-precision
// backend creators and caches the Calculator instances built from them.
// Backends register themselves by name; optional backends (such as the GMP
// one) do so from an init() behind their build tag.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreCalculator
	calculators map[string]Calculator
}

// NewDefaultFactory creates a factory with the standard backend
// pre-registered:
//
//   - "matrix": MatrixExponentiation over math/big (always available)
//
// Building with -tags=gmp additionally registers "gmp" on the global
// factory.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreCalculator),
		calculators: make(map[string]Calculator),
	}
	_ = f.Register("matrix", func() coreCalculator { return &MatrixExponentiation{} })
	return f
}

// Register adds a backend to the factory. The creator is invoked lazily the
// first time the backend is requested. Registering an existing name
// replaces it and drops the cached instance.
func (f *DefaultFactory) Register(name string, creator func() coreCalculator) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.calculators, name)
	return nil
}

// Get returns the Calculator for the named backend, building and caching it
// on first use.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, exists := f.calculators[name]; exists {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring the write lock.
	if calc, exists := f.calculators[name]; exists {
		return calc, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator backend: %s", name)
	}

	calc := NewCalculator(creator())
	f.calculators[name] = calc
	return calc, nil
}

// MustGet is like Get but panics if the backend is not registered. Useful in
// initialization paths where a missing default backend is a programming
// error.
func (f *DefaultFactory) MustGet(name string) Calculator {
	calc, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("fibonacci: required calculator backend not found: %s", name))
	}
	return calc
}

// List returns the registered backend names, sorted alphabetically.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a backend with the given name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// globalFactory is the default global factory instance.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the global factory instance, a convenience for
// callers that do not need multiple factories.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterCalculator registers a backend in the global factory.
func RegisterCalculator(name string, creator func() coreCalculator) error {
	return globalFactory.Register(name, creator)
}
