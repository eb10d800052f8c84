package protocol

import (
	"cmp"
	"maps"
	"math"
	"slices"
	"strings"
	"sync"
)

// Factory creates handlers by protocol name. CreateHandler returns nil
// when the factory does not serve the protocol. A nil pointer wrapped in
// a Handler counts as nil.
type Factory interface {
	CreateHandler(protocol string) Handler
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(protocol string) Handler

// CreateHandler calls f(protocol).
func (f FactoryFunc) CreateHandler(protocol string) Handler {
	return f(protocol)
}

// Prioritized is implemented by factories that declare a priority.
// Lower values are tried first.
type Prioritized interface {
	Priority() int
}

// Priorities. Factories that do not implement Prioritized get
// DefaultPriority.
const (
	HighestPriority = math.MinInt32
	DefaultPriority = 0
	LowestPriority  = math.MaxInt32
)

// PriorityOf returns the priority of v, or DefaultPriority.
func PriorityOf(v any) int {
	if p, ok := v.(Prioritized); ok {
		return p.Priority()
	}

	return DefaultPriority
}

type prioritizedFactory struct {
	Factory
	priority int
}

func (f *prioritizedFactory) Priority() int {
	return f.priority
}

// Prioritize returns f with an explicit priority.
func Prioritize(f Factory, priority int) Factory {
	return &prioritizedFactory{Factory: f, priority: priority}
}

// sortFactories orders factories by ascending priority, keeping the
// given order between equal priorities.
func sortFactories(factories []Factory) {
	slices.SortStableFunc(factories, func(a, b Factory) int {
		return cmp.Compare(PriorityOf(a), PriorityOf(b))
	})
}

// firstHandler returns the first non-nil handler created by factories,
// then the entry of handlers. Nil pointers are skipped like nil.
func firstHandler(factories []Factory, handlers map[string]Handler, protocol string) Handler {
	protocol = strings.ToLower(protocol)

	for _, f := range factories {
		if h := f.CreateHandler(protocol); !isNil(h) {
			return h
		}
	}

	return handlers[protocol]
}

// CompositeFactory tries its factories in ascending priority order and
// falls back to a map of handlers keyed by protocol. It is immutable and
// safe for concurrent use.
type CompositeFactory struct {
	factories []Factory
	handlers  map[string]Handler
}

// NewCompositeFactory sorts factories by priority once, at construction.
// Nil factories and handlers are skipped; protocol keys are lower-cased.
func NewCompositeFactory(handlers map[string]Handler, factories ...Factory) *CompositeFactory {
	c := &CompositeFactory{
		handlers: make(map[string]Handler, len(handlers)),
	}

	for protocol, h := range handlers {
		if !isNil(h) {
			c.handlers[strings.ToLower(protocol)] = h
		}
	}

	for _, f := range factories {
		if f != nil {
			c.factories = append(c.factories, f)
		}
	}

	sortFactories(c.factories)

	return c
}

// CreateHandler returns the first non-nil handler of the factories, then
// the registered handler for protocol, or nil.
func (c *CompositeFactory) CreateHandler(protocol string) Handler {
	return firstHandler(c.factories, c.handlers, protocol)
}

// Factories returns the factories in the order they are tried.
func (c *CompositeFactory) Factories() []Factory {
	return slices.Clone(c.factories)
}

// Handlers returns a copy of the handler map.
func (c *CompositeFactory) Handlers() map[string]Handler {
	return maps.Clone(c.handlers)
}

// MutableFactory is a CompositeFactory that accepts factories and
// handlers after construction. It is safe for concurrent use.
type MutableFactory struct {
	mu        sync.RWMutex
	factories []Factory
	handlers  map[string]Handler
}

// NewMutableFactory returns an empty MutableFactory.
func NewMutableFactory() *MutableFactory {
	return &MutableFactory{
		handlers: make(map[string]Handler),
	}
}

// AddFactory inserts f keeping the factories sorted by priority. Among
// equal priorities, earlier additions are tried first.
func (m *MutableFactory) AddFactory(f Factory) {
	if f == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.factories = append(m.factories, f)
	sortFactories(m.factories)
}

// AddHandler registers h for protocol, replacing any previous handler.
func (m *MutableFactory) AddHandler(protocol string, h Handler) {
	if isNil(h) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[strings.ToLower(protocol)] = h
}

// CreateHandler returns the first non-nil handler of the factories, then
// the registered handler for protocol, or nil.
func (m *MutableFactory) CreateHandler(protocol string) Handler {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return firstHandler(m.factories, m.handlers, protocol)
}
