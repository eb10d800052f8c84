// Package resource implements the "resource" protocol: read-only access
// to named fs.FS mounts.
//
// The mount is selected through a sub-protocol; without one the default
// (unnamed) mount is used:
//
//	h := resource.New()
//	h.Mount("", os.DirFS("/srv/static"))
//	h.Mount("assets", assetsFS)
//
//	if _, err := protocol.Register(h); err != nil {
//	    log.Fatal(err)
//	}
//
//	protocol.Open(ctx, protocol.DefaultCatalog, "resource:///index.html")
//	protocol.Open(ctx, protocol.DefaultCatalog, "resource:assets:///img/logo.png")
package resource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"net/url"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/vitalvas/urlproto/protocol"
	"github.com/vitalvas/urlproto/urlspec"
)

var (
	// ErrUnknownMount is returned when a URL selects a mount that does
	// not exist.
	ErrUnknownMount = errors.New("resource: unknown mount")

	// ErrIsDirectory is returned when a URL names a directory.
	ErrIsDirectory = errors.New("resource: is a directory")
)

// Handler serves files from named mounts. It is safe for concurrent use.
type Handler struct {
	protocol.Extendable

	mu     sync.RWMutex
	mounts map[string]fs.FS
}

// New returns a handler without mounts.
func New() *Handler {
	return &Handler{
		mounts: make(map[string]fs.FS),
	}
}

// Mount attaches fsys under name, replacing a previous mount. An empty
// name is the default mount. A nil fsys removes the mount.
func (h *Handler) Mount(name string, fsys fs.FS) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if fsys == nil {
		delete(h.mounts, name)
		return
	}

	h.mounts[name] = fsys
}

// Mounts returns the sorted mount names.
func (h *Handler) Mounts() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Sorted(maps.Keys(h.mounts))
}

// Open opens the file named by the path of u in the mount selected by
// its first sub-protocol.
func (h *Handler) Open(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	subs, err := h.SubProtocols(u)
	if err != nil {
		return nil, err
	}

	var name string
	if len(subs) > 0 {
		name = subs[0]
	}

	h.mu.RLock()
	fsys, ok := h.mounts[name]
	h.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMount, name)
	}

	p, err := urlspec.Unescape(urlspec.StripMatrix(u.EscapedPath(), urlspec.MatrixParam))
	if err != nil {
		return nil, err
	}

	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		p = "."
	}

	f, err := fsys.Open(p)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, p)
	}

	return f, nil
}
