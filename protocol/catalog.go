package protocol

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/vitalvas/urlproto/urlspec"
)

// DefaultCatalog is the catalog Register records into by default.
// Importing github.com/vitalvas/urlproto/builtin installs the builtin
// handlers into it.
var DefaultCatalog = NewCatalog(DefaultPackages)

// Catalog finds handlers by protocol name through a PackageList: for each
// prefix in list order it looks for a handler registered as
// "<prefix>/<protocol>", then falls back to "BuiltinPackage/<protocol>".
// It implements Factory and is safe for concurrent use.
type Catalog struct {
	packages *PackageList

	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewCatalog returns an empty catalog searching pkgs. A nil list is
// replaced by an empty one.
func NewCatalog(pkgs *PackageList) *Catalog {
	if pkgs == nil {
		pkgs = NewPackageList("")
	}

	return &Catalog{
		packages: pkgs,
		handlers: make(map[string]Handler),
	}
}

// Packages returns the package list the catalog searches.
func (c *Catalog) Packages() *PackageList {
	return c.packages
}

// AddBuiltin records h as the builtin handler for protocol. Builtin
// handlers are found after every package in the list.
func (c *Catalog) AddBuiltin(protocol string, h Handler) error {
	if isNil(h) {
		return &StateError{Type: fmt.Sprintf("%T", h), Err: ErrNilHandler}
	}

	if !urlspec.ValidScheme(protocol) {
		return fmt.Errorf("%w: %q", ErrInvalidProtocol, protocol)
	}

	protocol = strings.ToLower(protocol)

	id := Identity{
		Protocol: protocol,
		Package:  BuiltinPackage + "/" + protocol,
		Parent:   BuiltinPackage,
		Type:     reflect.TypeOf(h).String(),
	}

	if b, ok := h.(binder); ok {
		b.bind(id)
	}

	c.add(id, h)

	return nil
}

func (c *Catalog) add(id Identity, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handlers[id.Key()] = h
}

// CreateHandler returns the handler for protocol, or nil.
func (c *Catalog) CreateHandler(protocol string) Handler {
	protocol = strings.ToLower(protocol)
	prefixes := c.packages.Packages()

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, prefix := range prefixes {
		if h, ok := c.handlers[prefix+"/"+protocol]; ok {
			return h
		}
	}

	return c.handlers[BuiltinPackage+"/"+protocol]
}
