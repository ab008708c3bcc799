package regen

import "fmt"

// Registry holds the artifact kinds known to a build, in registration order.
type Registry struct {
	kinds map[string]Kind
	order []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]Kind),
	}
}

// Register adds a kind to the registry
func (r *Registry) Register(kind Kind) error {
	if kind.Name == "" {
		return fmt.Errorf("cannot register kind with empty name")
	}
	if kind.SourceExt == "" || kind.Args == nil {
		return fmt.Errorf("kind '%s' needs a source extension and an argument builder", kind.Name)
	}

	if _, exists := r.kinds[kind.Name]; exists {
		return fmt.Errorf("kind '%s' is already registered", kind.Name)
	}

	r.kinds[kind.Name] = kind
	r.order = append(r.order, kind.Name)
	return nil
}

// Get retrieves a kind by name
func (r *Registry) Get(name string) (Kind, bool) {
	kind, ok := r.kinds[name]
	return kind, ok
}

// Names returns registered kind names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Kinds returns registered kinds in registration order
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.order))
	for _, name := range r.order {
		kinds = append(kinds, r.kinds[name])
	}
	return kinds
}

// Select resolves names to kinds, keeping registration order.
// An empty selection means every kind.
func (r *Registry) Select(names ...string) ([]Kind, error) {
	if len(names) == 0 {
		return r.Kinds(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := r.Get(name); !ok {
			return nil, fmt.Errorf("unknown kind '%s' (known: %v)", name, r.Names())
		}
		wanted[name] = true
	}

	var kinds []Kind
	for _, kind := range r.Kinds() {
		if wanted[kind.Name] {
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}
