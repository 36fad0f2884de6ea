package authenticator

import "sort"

// Registry stores configured strategies by name
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates a registry holding strategies
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: make(map[string]Strategy, len(strategies))}
	for _, s := range strategies {
		r.Register(s)
	}
	return r
}

// Register adds a strategy under its own name, replacing any previous one
func (r *Registry) Register(strategy Strategy) {
	r.strategies[strategy.Name()] = strategy
}

// Strategy returns the strategy registered for name
func (r *Registry) Strategy(name string) (Strategy, bool) {
	strategy, ok := r.strategies[name]
	return strategy, ok
}

// Names returns the registered strategy names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
