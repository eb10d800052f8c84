package protocol

import (
	"reflect"
	"strings"

	"github.com/vitalvas/urlproto/urlspec"
)

const (
	// HandlerTypeName is the required name of extension handler types.
	HandlerTypeName = "Handler"

	// BuiltinPackage is the parent package of the handlers shipped with
	// this module. Extension handlers must not live in or under it.
	BuiltinPackage = "github.com/vitalvas/urlproto/builtin"
)

// Identity describes a validated handler type.
type Identity struct {
	// Protocol is the lower-cased protocol name.
	Protocol string

	// Package is the import path of the handler's package.
	Package string

	// Parent is Package without its last element. It is the prefix
	// recorded in the handler package list.
	Parent string

	// Type is the qualified type name, e.g. "resource.Handler".
	Type string
}

// Key returns the lookup key of the identity: Parent + "/" + Protocol.
func (id Identity) Key() string {
	return id.Parent + "/" + id.Protocol
}

// Inspect validates that h follows the handler convention and returns its
// identity. It records nothing. The rules are checked in order:
//
//  1. h is not nil, nor a nil pointer
//  2. the type is named (pointers are dereferenced)
//  3. the type name is exactly HandlerTypeName
//  4. the package is not equal to or under a reserved prefix
//  5. the package path has a parent
//  6. the protocol is a valid URL scheme
//
// Violations are returned as *StateError.
func Inspect(h any, opts ...Option) (Identity, error) {
	return inspect(h, newOptions(opts))
}

func inspect(h any, o *options) (Identity, error) {
	if h == nil {
		return Identity{}, &StateError{Type: "<nil>", Err: ErrNilHandler}
	}

	t := reflect.TypeOf(h)
	if isNil(h) {
		return Identity{}, &StateError{Type: t.String(), Err: ErrNilHandler}
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	typeName := t.String()

	if t.Name() == "" {
		return Identity{}, &StateError{Type: typeName, Err: ErrAnonymousHandler}
	}

	if t.Name() != HandlerTypeName {
		return Identity{}, &StateError{Type: typeName, Err: ErrHandlerName}
	}

	pkg := t.PkgPath()
	for _, prefix := range o.reserved {
		if pkg == prefix || strings.HasPrefix(pkg, prefix+"/") {
			return Identity{}, &StateError{Type: typeName, Err: ErrReservedPackage}
		}
	}

	slash := strings.LastIndexByte(pkg, '/')
	if slash <= 0 {
		return Identity{}, &StateError{Type: typeName, Err: ErrNoParentPackage}
	}

	name := o.protocol
	if name == "" {
		name = pkg[slash+1:]
	}

	if !urlspec.ValidScheme(name) {
		return Identity{}, &StateError{Type: typeName, Err: ErrInvalidProtocol}
	}

	return Identity{
		Protocol: strings.ToLower(name),
		Package:  pkg,
		Parent:   pkg[:slash],
		Type:     typeName,
	}, nil
}

// isNil reports whether v is nil or holds a nil pointer, map, slice,
// func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}

	return false
}
