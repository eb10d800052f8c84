package protocol

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"

	"github.com/vitalvas/urlproto/urlspec"
	"golang.org/x/net/idna"
)

// Handler opens the resource identified by a URL.
type Handler interface {
	Open(ctx context.Context, u *url.URL) (io.ReadCloser, error)
}

// Parser is implemented by handlers that control how their specs are
// parsed. Handlers without it get urlspec.Parse.
type Parser interface {
	Parse(spec string) (*url.URL, error)
}

// binder is satisfied by every type embedding Base.
type binder interface {
	bind(id Identity)
}

// Base is embedded by handlers. It holds the identity bound by Register
// or Catalog.AddBuiltin and parses specs with net/url.
type Base struct {
	id Identity
}

func (b *Base) bind(id Identity) {
	b.id = id
}

// Identity returns the identity bound at registration.
func (b *Base) Identity() Identity {
	return b.id
}

// Protocol returns the protocol name bound at registration.
func (b *Base) Protocol() string {
	return b.id.Protocol
}

// Parse parses spec as a plain URL. Internationalized host names are
// converted to their ASCII form.
func (b *Base) Parse(spec string) (*url.URL, error) {
	u, err := url.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", urlspec.ErrInvalidArgument, err)
	}

	if err := normalizeHost(u); err != nil {
		return nil, err
	}

	return u, nil
}

// Extendable is embedded by handlers that accept compound sub-protocol
// specs such as "jdbc:mysql://host/db".
type Extendable struct {
	Base
}

// Parse rewrites spec with urlspec.ReformSpec before parsing it.
func (e *Extendable) Parse(spec string) (*url.URL, error) {
	return e.Base.Parse(urlspec.ReformSpec(spec))
}

// SubProtocols returns the sub-protocols carried by a URL parsed with
// Parse.
func (e *Extendable) SubProtocols(u *url.URL) ([]string, error) {
	return urlspec.SubProtocols(u)
}

// normalizeHost converts a non-ASCII host name to its IDNA ASCII form.
func normalizeHost(u *url.URL) error {
	host := u.Hostname()
	if isASCII(host) {
		return nil
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return fmt.Errorf("%w: host %q: %w", urlspec.ErrInvalidArgument, host, err)
	}

	if port := u.Port(); port != "" {
		u.Host = net.JoinHostPort(ascii, port)
	} else {
		u.Host = ascii
	}

	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}
