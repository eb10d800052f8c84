// Package file implements the builtin "file" protocol handler.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/vitalvas/urlproto/protocol"
)

// Scheme is the protocol served by Handler.
const Scheme = "file"

var (
	// ErrRemoteHost is returned for file URLs naming a host other than
	// localhost.
	ErrRemoteHost = errors.New("file: remote hosts are not supported")

	// ErrEmptyPath is returned for file URLs without a path.
	ErrEmptyPath = errors.New("file: empty path")
)

// Handler opens local files.
type Handler struct {
	protocol.Base
}

// New returns a file handler.
func New() *Handler {
	return &Handler{}
}

// Open opens the file at u.Path. The host must be empty or "localhost".
func (h *Handler) Open(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if host := u.Hostname(); host != "" && host != "localhost" {
		return nil, fmt.Errorf("%w: %q", ErrRemoteHost, host)
	}

	if u.Path == "" {
		return nil, ErrEmptyPath
	}

	return os.Open(filepath.FromSlash(u.Path))
}
