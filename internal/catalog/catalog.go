package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/variantkit/variantkit/internal/variant"
)

// Catalog is an in-memory registry of component variant specs keyed by
// component name. Specs are validated on registration, so every spec a
// caller retrieves is safe to hand straight to the resolver.
type Catalog struct {
	mu    sync.RWMutex
	specs map[string]variant.Spec
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		specs: make(map[string]variant.Spec),
	}
}

// Register stores a spec keyed by its component name. Registration fails
// on invalid specs and duplicate names.
func (c *Catalog) Register(spec variant.Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.specs[spec.Component]; exists {
		return fmt.Errorf("component %q already registered", spec.Component)
	}
	c.specs[spec.Component] = spec

	return nil
}

// Get retrieves the spec for a component name.
func (c *Catalog) Get(component string) (variant.Spec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	spec, ok := c.specs[component]
	return spec, ok
}

// Names returns the registered component names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.specs))
	for name := range c.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered components.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.specs)
}
