// Package protocol resolves URL protocol names to stream handlers.
//
// # Handlers
//
// A Handler opens the resource a URL points to:
//
//	type Handler interface {
//	    Open(ctx context.Context, u *url.URL) (io.ReadCloser, error)
//	}
//
// Handlers usually embed Base, or Extendable when they accept compound
// "sub-protocol" specs such as "resource:assets:///logo.png" (see package
// urlspec).
//
// # Naming Convention
//
// An extension handler is a named type called "Handler" living in a
// package named after its protocol:
//
//	github.com/acme/protocols/s3.Handler  ->  protocol "s3"
//
// Register validates the convention before anything is recorded, then
// appends the parent package ("github.com/acme/protocols") to the handler
// package list and adds the handler to a Catalog:
//
//	id, err := protocol.Register(s3.New(client))
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, protocol.ErrIllegalState)
//	}
//
// Inspect runs the same checks without side effects. Handlers under
// BuiltinPackage are reserved for the handlers shipped with this module.
//
// # Handler Package List
//
// PackageList is the ordered list of package prefixes searched when a
// protocol name is resolved. Entries are only ever appended, and a prefix
// is recorded once. DefaultPackages is seeded from the
// URLPROTO_HANDLER_PKGS environment variable ("|"-delimited).
//
// # Factories
//
// CompositeFactory tries factories in ascending Priority order and returns
// the first non-nil handler, falling back to a map of handlers keyed by
// protocol:
//
//	f := protocol.NewCompositeFactory(
//	    map[string]protocol.Handler{"mem": memHandler},
//	    protocol.DefaultCatalog,
//	    protocol.Prioritize(custom, protocol.HighestPriority),
//	)
//
//	rc, u, err := protocol.Open(ctx, f, "resource:assets:///logo.png")
//
// MutableFactory is the mutable variant. ServiceRegistry collects factories
// and handlers provided by packages at init time, and a YAML Manifest
// selects, reorders and aliases them.
package protocol
