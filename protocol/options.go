package protocol

import "log/slog"

// Option configures Inspect and Register.
type Option func(*options)

type options struct {
	protocol string
	reserved []string
	catalog  *Catalog
	logger   *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		reserved: []string{BuiltinPackage},
		catalog:  DefaultCatalog,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}

// WithProtocol sets the protocol name explicitly instead of deriving it
// from the package path. The type name and package checks still apply.
func WithProtocol(name string) Option {
	return func(o *options) {
		o.protocol = name
	}
}

// WithReserved adds package prefixes that handlers must not live in or
// under. BuiltinPackage is always reserved.
func WithReserved(prefixes ...string) Option {
	return func(o *options) {
		o.reserved = append(o.reserved, prefixes...)
	}
}

// WithCatalog sets the catalog, and with it the package list, that
// Register records into. Defaults to DefaultCatalog.
func WithCatalog(c *Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// WithLogHandler configures the slog.Handler used to log registrations.
// Logs are discarded by default.
func WithLogHandler(h slog.Handler) Option {
	return func(o *options) {
		if h != nil {
			o.logger = slog.New(h)
		}
	}
}
