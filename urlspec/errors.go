package urlspec

import "errors"

// ErrInvalidArgument is returned when a spec or an escaped matrix value
// cannot be decoded.
var ErrInvalidArgument = errors.New("urlspec: invalid argument")
