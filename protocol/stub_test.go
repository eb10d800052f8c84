package protocol

import (
	"context"
	"io"
	"net/url"
	"strings"
)

type stubHandler struct {
	Base
	name string
}

func newStub(name string) *stubHandler {
	return &stubHandler{name: name}
}

func (s *stubHandler) Open(_ context.Context, _ *url.URL) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.name)), nil
}

// staticFactory serves one protocol and records what it was asked for.
type staticFactory struct {
	protocol string
	handler  Handler
	priority int
	asked    []string
}

func (f *staticFactory) CreateHandler(protocol string) Handler {
	f.asked = append(f.asked, protocol)
	if protocol == f.protocol {
		return f.handler
	}

	return nil
}

func (f *staticFactory) Priority() int {
	return f.priority
}

func nilFactory() Factory {
	return FactoryFunc(func(string) Handler { return nil })
}
