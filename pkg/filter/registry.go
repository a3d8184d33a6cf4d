package filter

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ExpressionPrefix marks a registry lookup as an inline expression.
const ExpressionPrefix = "expr:"

// Registry resolves predicates by name so configuration files can refer to
// them.
type Registry struct {
	mu         sync.RWMutex
	predicates map[string]Predicate
}

// NewRegistry returns a registry holding the built-in predicates.
func NewRegistry() *Registry {
	r := &Registry{predicates: make(map[string]Predicate)}
	r.MustRegister("contains", Contains())
	r.MustRegister("startsWith", StartsWith())
	r.MustRegister("endsWith", EndsWith())
	r.MustRegister("fuzzy", Fuzzy())
	return r
}

// Register adds or replaces a named predicate.
func (r *Registry) Register(name string, pred Predicate) error {
	key := normalize(name)
	if key == "" {
		return fmt.Errorf("filter: predicate name is required")
	}
	if pred == nil {
		return fmt.Errorf("filter: predicate %q is nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[key] = pred
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(name string, pred Predicate) {
	if err := r.Register(name, pred); err != nil {
		panic(err)
	}
}

// Lookup resolves name. An empty name yields Contains; names starting with
// "expr:" are compiled as expressions.
func (r *Registry) Lookup(name string) (Predicate, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Contains(), nil
	}
	if rest, ok := strings.CutPrefix(trimmed, ExpressionPrefix); ok {
		return Expression(rest)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	pred, ok := r.predicates[normalize(trimmed)]
	if !ok {
		return nil, fmt.Errorf("filter: predicate %q not found", name)
	}
	return pred, nil
}

// Names lists registered predicate names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.predicates))
	for name := range r.predicates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Lookup resolves name against the shared default registry.
func Lookup(name string) (Predicate, error) {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry.Lookup(name)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
