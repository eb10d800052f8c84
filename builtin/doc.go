// Package builtin installs the handlers shipped with urlproto.
//
// Importing the package for its side effects installs them into
// protocol.DefaultCatalog:
//
//	import _ "github.com/vitalvas/urlproto/builtin"
//
// Builtin handlers are found after every entry of the handler package
// list, so extension handlers can take over a builtin protocol. Their
// packages are reserved: extension handlers cannot live under them.
//
// Available protocols:
//
//	file - local files (file:///etc/hosts)
//	mem  - in-memory blobs (mem://<uuid>)
package builtin
