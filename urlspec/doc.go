// Package urlspec rewrites URL specs whose scheme carries a compound
// "sub-protocol" into specs that net/url can parse, and reads the
// sub-protocol back from the parsed URL.
//
// A compound spec looks like:
//
//	jdbc:mysql://localhost:3307/mydb?charset=UTF-8#top
//
// The standard parser sees the scheme "jdbc" and an opaque remainder
// "mysql://localhost:3307/...", losing the authority. Reform moves the
// sub-protocol out of the scheme and into a matrix parameter on the path:
//
//	jdbc://localhost:3307/mydb;_sp=mysql?charset=UTF-8#top
//
// # Matrix Parameter
//
// The parameter name is MatrixParam ("_sp"). Nested sub-protocols are
// joined with SubProtocolSeparator:
//
//	jdbc:mysql:replication://h/db  ->  jdbc://h/db;_sp=mysql:replication
//
// Each token is percent-escaped so that the delimiters the convention
// relies on (";" and "=") and the URL delimiters ("?", "#", "/") never
// appear raw in the value.
//
// The parameter is inserted before the first existing matrix parameter
// or query string, whichever comes first. When the URL has neither it is
// appended to the path, before any fragment. An empty path becomes "/" so
// the parameter never lands in the authority.
//
// # Reading Back
//
// Parse combines ReformSpec and url.Parse:
//
//	u, err := urlspec.Parse("jdbc:mysql://localhost:3307/mydb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	subs, _ := urlspec.SubProtocols(u) // ["mysql"]
//	spec, _ := urlspec.Restore(u)      // "jdbc:mysql://localhost:3307/mydb"
//
// Matrix and StripMatrix give generic access to matrix parameters of an
// escaped path.
//
// # Detection
//
// Specs with no "://" after the scheme are returned unchanged. So are
// specs where the text between the scheme and "://" contains "/", "?" or
// "#": the marker then belongs to the path or query, not to the scheme.
// Rewriting is best effort and never fails.
package urlspec
