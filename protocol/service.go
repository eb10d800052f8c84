package protocol

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// DefaultServices is the registry Provide and ProvideHandler record into.
var DefaultServices = NewServiceRegistry()

// ServiceRegistry collects factories and handlers that packages provide,
// typically from init functions. It is safe for concurrent use.
type ServiceRegistry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	handlers  map[string]Handler
}

// NewServiceRegistry returns an empty registry.
func NewServiceRegistry() *ServiceRegistry {
	return &ServiceRegistry{
		factories: make(map[string]Factory),
		handlers:  make(map[string]Handler),
	}
}

// Provide makes a factory available under name. It panics if f is nil or
// name is already provided.
func (r *ServiceRegistry) Provide(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f == nil {
		panic("protocol: Provide factory is nil")
	}

	if _, dup := r.factories[name]; dup {
		panic("protocol: Provide called twice for factory " + name)
	}

	r.factories[name] = f
}

// ProvideHandler makes a handler available for protocol. It panics if h
// is nil or protocol is already provided.
func (r *ServiceRegistry) ProvideHandler(protocol string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if isNil(h) {
		panic("protocol: ProvideHandler handler is nil")
	}

	protocol = strings.ToLower(protocol)
	if _, dup := r.handlers[protocol]; dup {
		panic("protocol: ProvideHandler called twice for protocol " + protocol)
	}

	r.handlers[protocol] = h
}

// Names returns the sorted names of the provided factories.
func (r *ServiceRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.factories))
}

// Protocols returns the sorted protocols of the provided handlers.
func (r *ServiceRegistry) Protocols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.handlers))
}

// Factory snapshots the registry into a CompositeFactory.
//
// Without a manifest, or with a manifest listing no factories, every
// provided factory is used in name order (then sorted by priority). A
// manifest listing factories selects only those, skipping disabled
// entries and overriding priorities. Manifest aliases map extra
// protocols to provided handlers.
func (r *ServiceRegistry) Factory(m *Manifest) (*CompositeFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handlers := maps.Clone(r.handlers)

	var factories []Factory
	if m == nil || len(m.Factories) == 0 {
		for _, name := range slices.Sorted(maps.Keys(r.factories)) {
			factories = append(factories, r.factories[name])
		}
	} else {
		for _, entry := range m.Factories {
			if entry.Disabled {
				continue
			}

			f, ok := r.factories[entry.Name]
			if !ok {
				return nil, fmt.Errorf("%w: factory %q", ErrUnknownProvider, entry.Name)
			}

			if entry.Priority != nil {
				f = Prioritize(f, *entry.Priority)
			}

			factories = append(factories, f)
		}
	}

	if m != nil {
		for alias, target := range m.Aliases {
			h, ok := r.handlers[strings.ToLower(target)]
			if !ok {
				return nil, fmt.Errorf("%w: handler %q for alias %q", ErrUnknownProvider, target, alias)
			}

			handlers[strings.ToLower(alias)] = h
		}
	}

	return NewCompositeFactory(handlers, factories...), nil
}

// Provide makes a factory available in DefaultServices.
func Provide(name string, f Factory) {
	DefaultServices.Provide(name, f)
}

// ProvideHandler makes a handler available in DefaultServices.
func ProvideHandler(protocol string, h Handler) {
	DefaultServices.ProvideHandler(protocol, h)
}

// NewServiceFactory snapshots DefaultServices. See ServiceRegistry.Factory.
func NewServiceFactory(m *Manifest) (*CompositeFactory, error) {
	return DefaultServices.Factory(m)
}
