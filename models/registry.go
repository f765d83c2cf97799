package models

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sv/mcp-paradex-go/record"
)

// Registry is a named collection of record schemas. The zero value is
// ready to use and safe for concurrent access.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*record.Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*record.Schema)}
}

// Register adds a schema under its own name. Registering the same name
// twice is an error so a typo cannot silently shadow an earlier schema.
func (r *Registry) Register(s *record.Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.schemas == nil {
		r.schemas = make(map[string]*record.Schema)
	}
	if _, ok := r.schemas[s.Name()]; ok {
		return fmt.Errorf("schema %q already registered", s.Name())
	}
	r.schemas[s.Name()] = s

	return nil
}

// Lookup resolves a schema by record type name.
func (r *Registry) Lookup(name string) (*record.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]

	return s, ok
}

// Names returns the registered record type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Default holds every schema defined in this package, registered at init.
var Default = NewRegistry()

// MustSchema resolves a schema from the default registry and panics when
// the name is unknown. Intended for endpoint wiring, where a miss is a
// programming error.
func MustSchema(name string) *record.Schema {
	s, ok := Default.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("models: no schema registered under %q", name))
	}

	return s
}

func init() {
	for _, s := range []*record.Schema{
		SystemStateSchema,
		BBOSchema,
		TradeSchema,
		PositionSchema,
		FillSchema,
		TransactionSchema,
		OrderStateSchema,
		VaultSchema,
		VaultBalanceSchema,
		VaultSummarySchema,
		VaultAccountSummarySchema,
		GreeksSchema,
		MarketSummarySchema,
		MarketDetailsSchema,
		AccountSummarySchema,
	} {
		if err := Default.Register(s); err != nil {
			panic(err)
		}
	}
}
