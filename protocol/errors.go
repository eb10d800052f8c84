package protocol

import (
	"errors"
	"fmt"
)

// ErrIllegalState matches every handler convention violation.
var ErrIllegalState = errors.New("protocol: illegal handler state")

// Handler convention errors. They are reported wrapped in a *StateError.
var (
	// ErrNilHandler is returned when the handler is nil.
	ErrNilHandler = errors.New("protocol: handler must not be nil")

	// ErrAnonymousHandler is returned for handlers of unnamed types.
	ErrAnonymousHandler = errors.New("protocol: handler type must be a named type")

	// ErrHandlerName is returned when the handler type is not called
	// "Handler".
	ErrHandlerName = errors.New(`protocol: handler type must be named "Handler"`)

	// ErrReservedPackage is returned for handlers in or under a reserved
	// package such as BuiltinPackage.
	ErrReservedPackage = errors.New("protocol: handler package is reserved")

	// ErrNoParentPackage is returned when the handler package path has a
	// single element.
	ErrNoParentPackage = errors.New("protocol: handler package has no parent")

	// ErrInvalidProtocol is returned when the protocol name is not a valid
	// URL scheme.
	ErrInvalidProtocol = errors.New("protocol: invalid protocol name")
)

// Resolution errors.
var (
	// ErrUnknownProtocol is returned when no handler matches a protocol.
	ErrUnknownProtocol = errors.New("protocol: unknown protocol")

	// ErrUnknownProvider is returned when a manifest names a factory or
	// handler that was never provided.
	ErrUnknownProvider = errors.New("protocol: unknown provider")

	// ErrInvalidManifest is returned when a manifest cannot be decoded or
	// fails validation.
	ErrInvalidManifest = errors.New("protocol: invalid manifest")
)

// StateError reports a handler type that breaks the naming or placement
// convention. It matches both ErrIllegalState and the rule in Err.
type StateError struct {
	// Type is the qualified name of the offending handler type.
	Type string

	// Err is the violated rule.
	Err error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%v (type %s)", e.Err, e.Type)
}

func (e *StateError) Unwrap() []error {
	return []error{ErrIllegalState, e.Err}
}
