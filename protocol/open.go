package protocol

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/vitalvas/urlproto/urlspec"
)

// Resolve finds the handler for the scheme of spec and parses spec with
// it. Handlers that do not implement Parser get urlspec.Parse.
func Resolve(f Factory, spec string) (Handler, *url.URL, error) {
	scheme, ok := urlspec.Scheme(spec)
	if !ok {
		return nil, nil, fmt.Errorf("%w: no scheme in %q", urlspec.ErrInvalidArgument, spec)
	}

	h := f.CreateHandler(scheme)
	if isNil(h) {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownProtocol, scheme)
	}

	var (
		u   *url.URL
		err error
	)

	if p, ok := h.(Parser); ok {
		u, err = p.Parse(spec)
	} else {
		u, err = urlspec.Parse(spec)
	}

	if err != nil {
		return nil, nil, err
	}

	return h, u, nil
}

// Open resolves spec through f and opens it. The caller closes the
// returned reader.
func Open(ctx context.Context, f Factory, spec string) (io.ReadCloser, *url.URL, error) {
	h, u, err := Resolve(f, spec)
	if err != nil {
		return nil, nil, err
	}

	rc, err := h.Open(ctx, u)
	if err != nil {
		return nil, u, err
	}

	return rc, u, nil
}
