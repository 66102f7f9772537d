package genkin

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is a mutable code→[Currency] map. A process-wide instance
// preloaded with the bundled ISO 4217 table is available through
// [DefaultRegistry]; isolated instances for testing or custom tables come
// from [NewRegistry].
//
// A Registry is not safe for concurrent mutation. Callers embedding it in
// a multi-goroutine host must guard Register, Unregister, and Clear with
// their own synchronization; reads of an already-populated, no-longer
// mutated registry may be shared freely.
type Registry struct {
	currencies map[string]Currency
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{currencies: make(map[string]Currency)}
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	if err := r.RegisterAll(bundledCurrencies...); err != nil {
		panic(fmt.Sprintf("registering bundled currencies: %v", err))
	}
	return r
}()

// DefaultRegistry returns the process-wide registry preloaded with the
// bundled currency table.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds or replaces a currency descriptor, keyed by its
// upper-cased code. It returns an error if the descriptor is invalid.
func (r *Registry) Register(c Currency) error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("registering currency: %w", err)
	}
	r.currencies[strings.ToUpper(c.Code)] = c
	return nil
}

// RegisterAll registers every descriptor, stopping at the first invalid one.
func (r *Registry) RegisterAll(currencies ...Currency) error {
	for _, c := range currencies {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Get looks up a descriptor by code. Lookup is case-insensitive.
func (r *Registry) Get(code string) (Currency, bool) {
	c, ok := r.currencies[strings.ToUpper(code)]
	return c, ok
}

// Has reports whether a descriptor is registered under the given code.
func (r *Registry) Has(code string) bool {
	_, ok := r.Get(code)
	return ok
}

// Unregister removes the descriptor registered under the given code and
// reports whether one was present.
func (r *Registry) Unregister(code string) bool {
	key := strings.ToUpper(code)
	_, ok := r.currencies[key]
	delete(r.currencies, key)
	return ok
}

// Clear removes every registered descriptor.
func (r *Registry) Clear() {
	r.currencies = make(map[string]Currency)
}

// All returns the registered descriptors ordered by code.
func (r *Registry) All() []Currency {
	all := make([]Currency, 0, len(r.currencies))
	for _, code := range r.Codes() {
		all = append(all, r.currencies[code])
	}
	return all
}

// Codes returns the registered codes in lexical order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.currencies))
	for code := range r.currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Size returns the number of registered descriptors.
func (r *Registry) Size() int {
	return len(r.currencies)
}
